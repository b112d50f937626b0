package vault

import (
	htemplate "html/template"
	"log/slog"
	"text/template"
)

type secret struct{ key string }

// Vault keeps a secret that only this package can name.
type Vault struct {
	s secret
}

// NewVault takes a text template while render takes an HTML one.
func NewVault(t *template.Template) *Vault { return &Vault{} }

func (v *Vault) render(t *htemplate.Template) {}

func (v *Vault) logger() *slog.Logger { return slog.Default() }

// Name is always wrappable.
func (v *Vault) Name() string { return "vault" }

// Reveal and Take mention an unexported type.
func (v *Vault) Reveal() secret { return v.s }

func (v *Vault) Take(s *secret) { v.s = *s }

// Vault has the name of the field a wrapper embeds it under.
func (v *Vault) Vault() string { return "vault" }
