// Package password calcula y verifica el resumen de contraseñas.
//
// El resumen es argon2id con una sal derivada del pepper del servidor (BLAKE2b con clave),
// en hexadecimal: la misma contraseña con el mismo pepper produce siempre el mismo resumen.
package password

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

// ErrEmptyPepper el hasher requiere una clave.
var ErrEmptyPepper = errors.New("password: pepper vacío")

// Costo de argon2id (perfil mínimo recomendado por OWASP).
const (
	argonTime    = 2
	argonMemory  = 19 * 1024 // KiB
	argonThreads = 1
	keyLen       = 32
	saltLen      = 16
)

// saltLabel contenido fijo que el pepper firma para obtener la sal.
const saltLabel = "ecommerce-admin-api/password-salt"

// Hasher resume contraseñas con una sal fija derivada del pepper.
type Hasher struct {
	salt []byte
}

// NewHasher crea el hasher. blake2b acepta claves de hasta 64 bytes; las más largas se resumen primero.
func NewHasher(pepper string) (*Hasher, error) {
	if pepper == "" {
		return nil, ErrEmptyPepper
	}
	key := []byte(pepper)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	mac, err := blake2b.New256(key)
	if err != nil {
		return nil, err
	}
	mac.Write([]byte(saltLabel))
	return &Hasher{salt: mac.Sum(nil)[:saltLen]}, nil
}

// Digest resumen hex de 64 caracteres.
func (h *Hasher) Digest(plain string) string {
	return hex.EncodeToString(argon2.IDKey([]byte(plain), h.salt, argonTime, argonMemory, argonThreads, keyLen))
}

// Verify compara en tiempo constante.
func (h *Hasher) Verify(plain, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Digest(plain)), []byte(digest)) == 1
}
