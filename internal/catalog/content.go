package catalog

import "careerpath/internal/locale"

// ServiceCards describes each offer on the services page, in Services() order.
var ServiceCards = []Entry{
	{
		ID:      LinkedIn.String(),
		Title:   LinkedIn.Label(),
		Summary: locale.T("We write, optimize and run your LinkedIn presence so recruiters find you.", "Nous rédigeons, optimisons et animons votre présence LinkedIn pour que les recruteurs vous trouvent."),
		Features: fields(
			locale.T("Profile audit", "Audit de profil"),
			locale.T("Content calendar", "Calendrier éditorial"),
			locale.T("Network strategy", "Stratégie de réseau"),
		),
	},
	{
		ID:      Coaching.String(),
		Title:   Coaching.Label(),
		Summary: locale.T("One-to-one sessions to choose a direction and land the job.", "Des séances individuelles pour choisir une voie et décrocher le poste."),
		Features: fields(
			locale.T("Career assessment", "Bilan de carrière"),
			locale.T("Interview preparation", "Préparation aux entretiens"),
			locale.T("Career change support", "Accompagnement à la reconversion"),
		),
	},
	{
		ID:      Training.String(),
		Title:   Training.Label(),
		Summary: locale.T("Short certified courses built with our training partners.", "Des formations courtes et certifiantes conçues avec nos partenaires."),
		Features: fields(
			locale.T("Online or on site", "En ligne ou en présentiel"),
			locale.T("Recognized certificates", "Certificats reconnus"),
		),
	},
	{
		ID:      Enrollment.String(),
		Title:   Enrollment.Label(),
		Summary: locale.T("We find the right school and handle the application with you.", "Nous trouvons la bonne école et montons le dossier avec vous."),
		Features: fields(
			locale.T("Bachelor, master and engineering programs", "Licence, master et cycles ingénieur"),
			locale.T("Partner schools in Africa, Europe and Canada", "Écoles partenaires en Afrique, en Europe et au Canada"),
		),
	},
	{
		ID:      Entrepreneurship.String(),
		Title:   Entrepreneurship.Label(),
		Summary: locale.T("From business idea to registered company, with a mentor at each step.", "De l'idée au lancement de l'entreprise, avec un mentor à chaque étape."),
		Features: fields(
			locale.T("Business plan", "Business plan"),
			locale.T("Company registration", "Création d'entreprise"),
			locale.T("Funding search", "Recherche de financement"),
		),
	},
}

// Stat is a headline figure on the home page.
type Stat struct {
	Value string
	Label locale.Text
}

var Stats = []Stat{
	{Value: "1 200+", Label: locale.T("people coached", "personnes accompagnées")},
	{Value: "85%", Label: locale.T("find a job within 6 months", "trouvent un emploi en 6 mois")},
	{Value: "40+", Label: locale.T("partner schools", "écoles partenaires")},
	{Value: "3", Label: locale.T("offices", "bureaux")},
}

// Testimonial is a client quote shown in the rotating carousel.
type Testimonial struct {
	Name   string
	Role   locale.Text
	Quote  locale.Text
	Rating int
}

// TestimonialView is a Testimonial resolved in one locale.
type TestimonialView struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

func (t Testimonial) View(l locale.Locale) TestimonialView {
	return TestimonialView{
		Name:   t.Name,
		Role:   t.Role.Resolve(l),
		Quote:  t.Quote.Resolve(l),
		Rating: t.Rating,
	}
}

var Testimonials = []Testimonial{
	{
		Name:   "Aïcha K.",
		Role:   locale.T("Financial analyst, Abidjan", "Analyste financière, Abidjan"),
		Quote:  locale.T("My LinkedIn profile went from invisible to three recruiter messages a week.", "Mon profil LinkedIn est passé d'invisible à trois messages de recruteurs par semaine."),
		Rating: 5,
	},
	{
		Name:   "Julien M.",
		Role:   locale.T("Project manager, Lyon", "Chef de projet, Lyon"),
		Quote:  locale.T("The coaching program gave me the confidence to negotiate a 15% raise.", "Le programme de coaching m'a donné l'assurance de négocier 15 % d'augmentation."),
		Rating: 5,
	},
	{
		Name:   "Fatou D.",
		Role:   locale.T("Master's student, Montréal", "Étudiante en master, Montréal"),
		Quote:  locale.T("They handled my school application and visa file from start to finish.", "Ils ont géré ma candidature et mon dossier visa du début à la fin."),
		Rating: 4,
	},
}
