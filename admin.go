package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"

	"careerpath/internal/db"
)

// Valeur par défaut de Werkzeug
const defaultHashIterations = 600000

// --- vérification des mots de passe (compatible Werkzeug) ---

// verifyPassword vérifie un mot de passe contre un hash.
// Supporte le format pbkdf2:sha256:iterations$salt$hash
// et aussi la comparaison en clair.
func verifyPassword(storedHash, password string) bool {
	if strings.HasPrefix(storedHash, "pbkdf2:") {
		return verifyWerkzeugHash(storedHash, password)
	}
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(password)) == 1
}

// verifyWerkzeugHash vérifie un mot de passe contre un hash Werkzeug.
// Format: pbkdf2:sha256:iterations$salt$hash
func verifyWerkzeugHash(storedHash, password string) bool {
	parts := strings.SplitN(storedHash, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, hashHex := parts[0], parts[1], parts[2]

	methodParts := strings.Split(method, ":")
	if len(methodParts) < 2 || methodParts[0] != "pbkdf2" || methodParts[1] != "sha256" {
		return false
	}
	iterations := defaultHashIterations
	if len(methodParts) >= 3 {
		n, err := strconv.Atoi(methodParts[2])
		if err != nil || n <= 0 {
			return false
		}
		iterations = n
	}

	expected, err := hex.DecodeString(hashHex)
	if err != nil || len(expected) == 0 {
		return false
	}
	computed := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(expected), sha256.New)

	// Comparaison en temps constant
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

// hashPassword produit un hash lisible par verifyPassword, à mettre dans
// CAREERPATH_ADMIN_PASSWORD.
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), defaultHashIterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", defaultHashIterations, salt, hex.EncodeToString(key)), nil
}

// --- middleware admin_required ---

// requireAdmin guards next with HTTP basic auth. Without a configured
// password or a lead store the admin area does not exist.
func (a *App) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.Settings.AdminPassword == "" || a.Leads == nil {
			a.renderError(w, r, http.StatusNotFound, a.currentLang(w, r))
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(a.Settings.AdminUsername)) != 1 ||
			!verifyPassword(a.Settings.AdminPassword, pass) {
			if ok {
				a.Logger.WarnContext(r.Context(), "admin login failed", slog.String("user", user))
			}
			w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (a *App) handleAdminLeads(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	leads, err := a.Leads.ListLeads(r.Context())
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "list leads", slog.Any("error", err))
		a.renderError(w, r, http.StatusInternalServerError, lang)
		return
	}
	a.render(w, r, http.StatusOK, "admin_leads", lang, map[string]any{
		"Leads": leads,
	})
}

func (a *App) handleAdminLead(w http.ResponseWriter, r *http.Request) {
	lang := a.currentLang(w, r)
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		a.renderError(w, r, http.StatusNotFound, lang)
		return
	}
	lead, err := a.Leads.GetLeadByID(r.Context(), id)
	if errors.Is(err, db.ErrLeadNotFound) {
		a.renderError(w, r, http.StatusNotFound, lang)
		return
	}
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "get lead", slog.String("id", id.String()), slog.Any("error", err))
		a.renderError(w, r, http.StatusInternalServerError, lang)
		return
	}
	a.render(w, r, http.StatusOK, "admin_lead", lang, map[string]any{
		"Lead": lead,
	})
}
