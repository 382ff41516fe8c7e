package catalog

import "careerpath/internal/locale"

// ProgramPreview is the number of field groups shown before "show all".
const ProgramPreview = 4

func fields(ts ...locale.Text) []locale.Text { return ts }

// Programs lists the field-of-study groups offered for enrollment, per cycle.
var Programs = NewTable[Cycle]().
	Add(Licence,
		Entry{
			ID:    "licence-business",
			Title: locale.T("Business & management", "Gestion & management"),
			Features: fields(
				locale.T("Accounting and finance", "Comptabilité et finance"),
				locale.T("Marketing", "Marketing"),
				locale.T("Human resources", "Ressources humaines"),
				locale.T("Logistics", "Logistique"),
			),
			Count: 12,
		},
		Entry{
			ID:    "licence-it",
			Title: locale.T("Computer science", "Informatique"),
			Features: fields(
				locale.T("Software development", "Développement logiciel"),
				locale.T("Networks and telecoms", "Réseaux et télécoms"),
				locale.T("Information systems", "Systèmes d'information"),
			),
			Count: 9,
		},
		Entry{
			ID:    "licence-law",
			Title: locale.T("Law & political science", "Droit & science politique"),
			Features: fields(
				locale.T("Business law", "Droit des affaires"),
				locale.T("Public law", "Droit public"),
			),
			Count: 5,
		},
		Entry{
			ID:    "licence-communication",
			Title: locale.T("Communication & journalism", "Communication & journalisme"),
			Features: fields(
				locale.T("Corporate communication", "Communication d'entreprise"),
				locale.T("Digital media", "Médias numériques"),
			),
			Count: 6,
		},
		Entry{
			ID:    "licence-health",
			Title: locale.T("Health sciences", "Sciences de la santé"),
			Features: fields(
				locale.T("Nursing", "Soins infirmiers"),
				locale.T("Biomedical analysis", "Analyses biomédicales"),
			),
			Count: 4,
		},
		Entry{
			ID:    "licence-agri",
			Title: locale.T("Agronomy", "Agronomie"),
			Features: fields(
				locale.T("Crop production", "Production végétale"),
				locale.T("Agri-food processing", "Transformation agroalimentaire"),
			),
			Count: 3,
		},
	).
	Add(Master,
		Entry{
			ID:    "master-finance",
			Title: locale.T("Finance & audit", "Finance & audit"),
			Features: fields(
				locale.T("Corporate finance", "Finance d'entreprise"),
				locale.T("Audit and control", "Audit et contrôle de gestion"),
				locale.T("Banking and insurance", "Banque et assurance"),
			),
			Count: 8,
		},
		Entry{
			ID:    "master-data",
			Title: locale.T("Data & artificial intelligence", "Data & intelligence artificielle"),
			Features: fields(
				locale.T("Data science", "Science des données"),
				locale.T("Machine learning", "Apprentissage automatique"),
				locale.T("Cybersecurity", "Cybersécurité"),
			),
			Count: 7,
		},
		Entry{
			ID:    "master-management",
			Title: locale.T("Management & strategy", "Management & stratégie"),
			Features: fields(
				locale.T("MBA", "MBA"),
				locale.T("Project management", "Management de projet"),
				locale.T("Supply chain", "Supply chain"),
			),
			Count: 10,
		},
		Entry{
			ID:    "master-public-health",
			Title: locale.T("Public health", "Santé publique"),
			Features: fields(
				locale.T("Epidemiology", "Épidémiologie"),
				locale.T("Health management", "Management des structures de santé"),
			),
			Count: 3,
		},
		Entry{
			ID:    "master-energy",
			Title: locale.T("Energy & environment", "Énergie & environnement"),
			Features: fields(
				locale.T("Renewable energy", "Énergies renouvelables"),
				locale.T("Environmental management", "Management environnemental"),
			),
			Count: 4,
		},
	).
	Add(Ingenieurie,
		Entry{
			ID:    "ing-civil",
			Title: locale.T("Civil engineering", "Génie civil"),
			Features: fields(
				locale.T("Construction", "Bâtiment"),
				locale.T("Public works", "Travaux publics"),
			),
			Count: 5,
		},
		Entry{
			ID:    "ing-electrical",
			Title: locale.T("Electrical engineering", "Génie électrique"),
			Features: fields(
				locale.T("Power systems", "Électrotechnique"),
				locale.T("Automation", "Automatisme"),
			),
			Count: 4,
		},
		Entry{
			ID:    "ing-software",
			Title: locale.T("Software engineering", "Génie logiciel"),
			Features: fields(
				locale.T("Cloud architecture", "Architecture cloud"),
				locale.T("Embedded systems", "Systèmes embarqués"),
			),
			Count: 6,
		},
	)
