// Package mapping copia campos entre registros de persistencia y modelos de transferencia.
//
// Un Profile copia por nombre de campo (jinzhu/copier) y luego aplica sus hooks en orden
// de declaración. Los campos sin par en el origen quedan con el valor por defecto del destino.
package mapping

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"golang.org/x/text/unicode/norm"
)

// Hook derivación que corre después de la copia de campos.
type Hook[S, D any] func(src *S, dst *D)

// Profile correspondencia declarativa S -> D.
type Profile[S, D any] struct {
	hooks []Hook[S, D]
}

// NewProfile valida la correspondencia una sola vez. Un perfil que copier no puede
// resolver es un error de programación: entra en pánico al arrancar.
func NewProfile[S, D any](hooks ...Hook[S, D]) *Profile[S, D] {
	var (
		src S
		dst D
	)
	if err := copier.Copy(&dst, &src); err != nil {
		panic(fmt.Sprintf("mapping: perfil %T -> %T inválido: %v", src, dst, err))
	}
	return &Profile[S, D]{hooks: hooks}
}

// Then devuelve un perfil nuevo con hooks adicionales; el original no cambia.
func (p *Profile[S, D]) Then(hooks ...Hook[S, D]) *Profile[S, D] {
	all := make([]Hook[S, D], 0, len(p.hooks)+len(hooks))
	all = append(all, p.hooks...)
	all = append(all, hooks...)
	return &Profile[S, D]{hooks: all}
}

// Map nunca falla.
func (p *Profile[S, D]) Map(src S) D {
	var dst D
	// validado en NewProfile
	_ = copier.Copy(&dst, &src)
	for _, h := range p.hooks {
		h(&src, &dst)
	}
	return dst
}

// MapPtr nil -> nil.
func (p *Profile[S, D]) MapPtr(src *S) *D {
	if src == nil {
		return nil
	}
	dst := p.Map(*src)
	return &dst
}

// MapSlice conserva el orden; nil -> lista vacía.
func (p *Profile[S, D]) MapSlice(src []S) []D {
	out := make([]D, 0, len(src))
	for _, s := range src {
		out = append(out, p.Map(s))
	}
	return out
}

// NormalizeName forma canónica de un nombre: NFC y sin espacios en los extremos.
// "Café" escrito con tilde combinante y precompuesta compara igual.
func NormalizeName(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// NormalizeEmail minúsculas y sin espacios.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
