package catalog

import "careerpath/internal/locale"

// Currency returns the currency prices are quoted in for r.
func (r Region) Currency() Currency {
	switch r {
	case Europe:
		return EUR
	case America:
		return USD
	}
	return XOF
}

type tier struct {
	id        string
	title     locale.Text
	summary   locale.Text
	features  []locale.Text
	period    locale.Text
	highlight bool
	// amounts in the currency of each region, in Regions() order.
	africa, europe, america int64
}

func (t tier) amount(r Region) int64 {
	switch r {
	case Africa:
		return t.africa
	case Europe:
		return t.europe
	case America:
		return t.america
	}
	return 0
}

func regionTable(tiers ...tier) *Table[Region] {
	t := NewTable[Region]()
	for _, r := range Regions() {
		entries := make([]Entry, 0, len(tiers))
		for _, tr := range tiers {
			amount := tr.amount(r)
			if amount <= 0 {
				continue
			}
			entries = append(entries, Entry{
				ID:        tr.id,
				Title:     tr.title,
				Summary:   tr.summary,
				Features:  tr.features,
				Highlight: tr.highlight,
				Price: &Price{
					Amount:   amount,
					Currency: r.Currency(),
					Period:   tr.period,
				},
			})
		}
		t.Add(r, entries...)
	}
	return t
}

var (
	oneOff     = locale.T("one-off", "paiement unique")
	perMonth   = locale.T("/ month", "/ mois")
	perSession = locale.T("/ session", "/ séance")
	perCourse  = locale.T("/ course", "/ formation")
	perFile    = locale.T("/ application", "/ dossier")
)

// Pricing is the service -> region -> tiers price list.
var Pricing = NewNested[Service, Region]().
	Set(LinkedIn, regionTable(
		tier{
			id:      "linkedin-essential",
			title:   locale.T("Essential", "Essentiel"),
			summary: locale.T("A clean, searchable profile.", "Un profil propre et trouvable."),
			features: []locale.Text{
				locale.T("Headline and summary rewrite", "Réécriture du titre et du résumé"),
				locale.T("Keyword optimization", "Optimisation des mots-clés"),
				locale.T("Profile photo advice", "Conseils photo de profil"),
			},
			period: oneOff,
			africa: 25000, europe: 49, america: 59,
		},
		tier{
			id:      "linkedin-pro",
			title:   locale.T("Pro", "Pro"),
			summary: locale.T("Profile plus a month of managed activity.", "Profil et un mois d'activité gérée."),
			features: []locale.Text{
				locale.T("Everything in Essential", "Tout le pack Essentiel"),
				locale.T("4 posts written for you", "4 publications rédigées pour vous"),
				locale.T("Targeted network growth", "Développement ciblé du réseau"),
				locale.T("Monthly activity report", "Rapport d'activité mensuel"),
			},
			period:    perMonth,
			highlight: true,
			africa:    50000, europe: 99, america: 119,
		},
		tier{
			id:      "linkedin-premium",
			title:   locale.T("Premium", "Premium"),
			summary: locale.T("Full management for active job seekers.", "Gestion complète pour une recherche active."),
			features: []locale.Text{
				locale.T("Everything in Pro", "Tout le pack Pro"),
				locale.T("12 posts per month", "12 publications par mois"),
				locale.T("Recruiter outreach", "Prise de contact avec les recruteurs"),
				locale.T("Weekly follow-up call", "Point hebdomadaire"),
			},
			period: perMonth,
			africa: 100000, europe: 199, america: 229,
		},
	)).
	Set(Coaching, regionTable(
		tier{
			id:      "coaching-session",
			title:   locale.T("Single session", "Séance unique"),
			summary: locale.T("One hour to unblock a decision.", "Une heure pour débloquer une décision."),
			features: []locale.Text{
				locale.T("60 min video call", "Visio de 60 min"),
				locale.T("Written action plan", "Plan d'action écrit"),
			},
			period: perSession,
			africa: 15000, europe: 60, america: 70,
		},
		tier{
			id:      "coaching-program",
			title:   locale.T("Career program", "Programme carrière"),
			summary: locale.T("Six sessions from assessment to offer.", "Six séances, du bilan à l'offre."),
			features: []locale.Text{
				locale.T("Skills and values assessment", "Bilan compétences et valeurs"),
				locale.T("CV and cover letter review", "Relecture CV et lettre de motivation"),
				locale.T("Interview simulations", "Simulations d'entretien"),
				locale.T("Salary negotiation prep", "Préparation à la négociation salariale"),
			},
			period:    oneOff,
			highlight: true,
			africa:    80000, europe: 320, america: 380,
		},
	)).
	Set(Training, regionTable(
		tier{
			id:      "training-digital",
			title:   locale.T("Digital skills", "Compétences numériques"),
			summary: locale.T("Certified office and data basics.", "Bureautique et bases de la donnée, certifiées."),
			features: []locale.Text{
				locale.T("20 hours online", "20 heures en ligne"),
				locale.T("Certificate of completion", "Attestation de réussite"),
			},
			period: perCourse,
			africa: 45000, europe: 150, america: 170,
		},
		tier{
			id:      "training-project",
			title:   locale.T("Project management", "Gestion de projet"),
			summary: locale.T("Preparation for an industry certification.", "Préparation à une certification reconnue."),
			features: []locale.Text{
				locale.T("40 hours with a trainer", "40 heures avec formateur"),
				locale.T("Mock exams", "Examens blancs"),
				locale.T("Exam voucher included", "Passage de l'examen inclus"),
			},
			period:    perCourse,
			highlight: true,
			africa:    150000, europe: 490, america: 550,
		},
	)).
	Set(Enrollment, regionTable(
		tier{
			id:      "enrollment-standard",
			title:   locale.T("Standard application", "Dossier standard"),
			summary: locale.T("One school, one program.", "Une école, un programme."),
			features: []locale.Text{
				locale.T("Program selection", "Choix du programme"),
				locale.T("Application file review", "Relecture du dossier"),
				locale.T("Admission follow-up", "Suivi de l'admission"),
			},
			period: perFile,
			africa: 35000, europe: 120, america: 140,
		},
		tier{
			id:      "enrollment-abroad",
			title:   locale.T("Study abroad", "Études à l'étranger"),
			summary: locale.T("Up to three schools and the visa file.", "Jusqu'à trois écoles et le dossier visa."),
			features: []locale.Text{
				locale.T("Three applications", "Trois candidatures"),
				locale.T("Visa file assistance", "Accompagnement dossier visa"),
				locale.T("Housing search tips", "Conseils recherche de logement"),
			},
			period:    perFile,
			highlight: true,
			africa:    120000, europe: 390, america: 450,
		},
	)).
	Set(Entrepreneurship, regionTable(
		tier{
			id:      "entrepreneur-starter",
			title:   locale.T("Starter", "Démarrage"),
			summary: locale.T("From idea to a tested offer.", "De l'idée à une offre testée."),
			features: []locale.Text{
				locale.T("Business model canvas workshop", "Atelier business model canvas"),
				locale.T("Market sizing", "Étude de marché simplifiée"),
				locale.T("Legal form advice", "Conseil sur la forme juridique"),
			},
			period: oneOff,
			africa: 75000, europe: 250, america: 290,
		},
		tier{
			id:      "entrepreneur-launch",
			title:   locale.T("Launch", "Lancement"),
			summary: locale.T("Three months of support after registration.", "Trois mois d'accompagnement après l'immatriculation."),
			features: []locale.Text{
				locale.T("Everything in Starter", "Tout le pack Démarrage"),
				locale.T("Brand and online presence", "Marque et présence en ligne"),
				locale.T("Monthly mentoring", "Mentorat mensuel"),
				locale.T("Funding file preparation", "Préparation du dossier de financement"),
			},
			period:    perMonth,
			highlight: true,
			africa:    60000, europe: 190, america: 220,
		},
	))
