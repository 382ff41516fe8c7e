package main

import "careerpath/internal/locale"

// Translations holds the UI labels of one language, keyed for templates.
type Translations map[string]string

var (
	translationsFR = flatten(locale.FR)
	translationsEN = flatten(locale.EN)
)

// T returns translations for the given language
func T(lang locale.Locale) Translations {
	if lang == locale.EN {
		return translationsEN
	}
	return translationsFR
}

func flatten(l locale.Locale) Translations {
	out := make(Translations, len(uiText))
	for key, text := range uiText {
		out[key] = text.Resolve(l)
	}
	return out
}

// uiText is every label of the interface, written in both languages.
var uiText = map[string]locale.Text{
	// Navigation
	"nav.home":         locale.T("Home", "Accueil"),
	"nav.services":     locale.T("Services", "Services"),
	"nav.pricing":      locale.T("Pricing", "Tarifs"),
	"nav.programs":     locale.T("Programs", "Formations"),
	"nav.testimonials": locale.T("Testimonials", "Témoignages"),
	"nav.contact":      locale.T("Contact", "Contact"),
	"nav.legal":        locale.T("Legal notice", "Mentions légales"),
	"nav.switch":       locale.T("Français", "English"),

	// Accueil
	"home.hero.title":    locale.T("Build the career you are aiming for", "Construisez la carrière que vous visez"),
	"home.hero.subtitle": locale.T("Coaching, LinkedIn, training and school enrollment, from Dakar to Montréal.", "Coaching, LinkedIn, formations et inscriptions, de Dakar à Montréal."),
	"home.cta":           locale.T("Book a free call", "Réserver un appel gratuit"),
	"home.cta.pricing":   locale.T("See our prices", "Voir nos tarifs"),
	"home.services":      locale.T("What we do", "Ce que nous faisons"),
	"home.stats":         locale.T("In figures", "En chiffres"),
	"home.testimonial":   locale.T("They trusted us", "Ils nous ont fait confiance"),

	// Services
	"services.title":    locale.T("Our services", "Nos services"),
	"services.subtitle": locale.T("Five ways to move your career forward.", "Cinq façons de faire avancer votre carrière."),
	"services.prices":   locale.T("See prices", "Voir les tarifs"),

	// Tarifs
	"pricing.title":    locale.T("Pricing", "Tarifs"),
	"pricing.subtitle": locale.T("Prices depend on where you live.", "Les prix dépendent de votre lieu de résidence."),
	"pricing.region":   locale.T("Your region", "Votre région"),
	"pricing.service":  locale.T("Service", "Service"),
	"pricing.empty":    locale.T("No offer for this selection.", "Aucune offre pour cette sélection."),
	"pricing.choose":   locale.T("Choose", "Choisir"),
	"pricing.popular":  locale.T("Most popular", "Le plus demandé"),

	// Formations
	"programs.title":     locale.T("Fields of study", "Filières"),
	"programs.subtitle":  locale.T("Programs we place students in, by cycle.", "Les cursus dans lesquels nous inscrivons nos étudiants, par cycle."),
	"programs.schools":   locale.T("partner schools", "écoles partenaires"),
	"programs.show_all":  locale.T("Show all fields", "Voir toutes les filières"),
	"programs.show_less": locale.T("Show less", "Voir moins"),
	"programs.empty":     locale.T("No program for this cycle.", "Aucune filière pour ce cycle."),

	// Témoignages
	"testimonials.title": locale.T("What our clients say", "Ce que disent nos clients"),
	"testimonials.prev":  locale.T("Previous", "Précédent"),
	"testimonials.next":  locale.T("Next", "Suivant"),
	"testimonials.empty": locale.T("No testimonial yet.", "Pas encore de témoignage."),

	// Contact
	"contact.title":         locale.T("Contact us", "Contactez-nous"),
	"contact.subtitle":      locale.T("Tell us about your project, we answer within 48 hours.", "Parlez-nous de votre projet, nous répondons sous 48 heures."),
	"contact.name":          locale.T("Full name", "Nom complet"),
	"contact.email":         locale.T("Email", "E-mail"),
	"contact.phone":         locale.T("Phone", "Téléphone"),
	"contact.subject":       locale.T("Subject", "Sujet"),
	"contact.subject.other": locale.T("Something else", "Autre demande"),
	"contact.message":       locale.T("Message", "Message"),
	"contact.optional":      locale.T("optional", "facultatif"),
	"contact.submit":        locale.T("Send", "Envoyer"),
	"contact.submitting":    locale.T("Sending...", "Envoi en cours..."),
	"contact.success":       locale.T("Thank you, your message has been sent.", "Merci, votre message a bien été envoyé."),
	"contact.reference":     locale.T("Reference", "Référence"),
	"contact.send_another":  locale.T("Send another message", "Envoyer un autre message"),
	"contact.error.missing": locale.T("Please fill in", "Merci de renseigner"),
	"contact.error.submit":  locale.T("Your message could not be sent. Please try again.", "Votre message n'a pas pu être envoyé. Merci de réessayer."),
	"contact.error.busy":    locale.T("Your message is already being sent.", "Votre message est déjà en cours d'envoi."),
	"contact.dismiss":       locale.T("Close", "Fermer"),
	"contact.offices":       locale.T("Our offices", "Nos bureaux"),
	"contact.hours":         locale.T("Opening hours", "Horaires"),
	"contact.map":           locale.T("Map", "Plan"),

	// Noms des champs, pour la liste des champs manquants
	"field.name":    locale.T("your name", "votre nom"),
	"field.email":   locale.T("your email", "votre e-mail"),
	"field.subject": locale.T("a subject", "un sujet"),
	"field.message": locale.T("a message", "un message"),

	// Mentions légales
	"legal.title":     locale.T("Legal notice", "Mentions légales"),
	"legal.publisher": locale.T("Publisher", "Éditeur"),
	"legal.hosting":   locale.T("Hosting", "Hébergement"),
	"legal.data":      locale.T("Personal data", "Données personnelles"),

	// Administration
	"admin.leads.title":   locale.T("Contact requests", "Demandes de contact"),
	"admin.leads.empty":   locale.T("No request yet.", "Aucune demande pour le moment."),
	"admin.leads.date":    locale.T("Date", "Date"),
	"admin.leads.lang":    locale.T("Language", "Langue"),
	"admin.leads.back":    locale.T("Back to the list", "Retour à la liste"),
	"admin.leads.details": locale.T("Details", "Détails"),

	// Erreurs
	"error.not_found": locale.T("This page does not exist.", "Cette page n'existe pas."),
	"error.server":    locale.T("Something went wrong on our side.", "Une erreur est survenue de notre côté."),
	"error.back":      locale.T("Back to home", "Retour à l'accueil"),

	"footer.rights": locale.T("All rights reserved.", "Tous droits réservés."),
}
