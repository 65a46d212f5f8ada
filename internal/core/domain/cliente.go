package domain

import (
	"strings"
	"time"
)

// Genero is the closed set of gender values a cliente may carry.
type Genero string

const (
	GeneroMasculino Genero = "M"
	GeneroFemenino  Genero = "F"
	GeneroOtro      Genero = "Otro"
)

// generoAliases maps each canonical value to the legacy free-text spellings
// found in historical rows. Matching is case- and whitespace-insensitive.
// "METRO" is a known data-entry typo for "M".
var generoAliases = map[Genero][]string{
	GeneroMasculino: {"M", "MASCULINO", "MALE", "METRO"},
	GeneroFemenino:  {"F", "FEMENINO", "FEMALE"},
	GeneroOtro:      {"OTRO", "OTHER"},
}

// GeneroAliases returns the legacy spellings (upper-cased) that normalize to g.
func GeneroAliases(g Genero) []string {
	return generoAliases[g]
}

// CanonicalGeneros returns the closed set in a stable order.
func CanonicalGeneros() []Genero {
	return []Genero{GeneroMasculino, GeneroFemenino, GeneroOtro}
}

// NormalizeGenero maps a raw gender value onto the closed set.
// It returns the canonical value and whether a mapping exists.
func NormalizeGenero(raw string) (Genero, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	for _, canonical := range CanonicalGeneros() {
		for _, alias := range generoAliases[canonical] {
			if cleaned == alias {
				return canonical, true
			}
		}
	}
	return "", false
}

// Cliente is a person record identified by a document number that is unique
// among records that are not soft-deleted.
type Cliente struct {
	ID                 int64
	Nombre             string
	Paterno            string
	Materno            string
	TipoDocumento      string
	DocumentoIdentidad string
	FechaNacimiento    time.Time // calendar date, no time component
	Genero             Genero
	FechaCreacion      time.Time
	DeletedAt          *time.Time

	// Cuentas is populated only by reads that attach the client's accounts.
	Cuentas []Cuenta
}

// IsDeleted reports whether the cliente has been soft-deleted.
func (c Cliente) IsDeleted() bool {
	return c.DeletedAt != nil
}
