package orm

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Naming is the convention used to discover source files in a directory.
// A file belongs to a role when its name ends with the role token followed by
// one of the extensions, e.g. "wall.Roughness.png".
type Naming struct {
	Tokens [len(Roles)]string
	// Extensions in priority order, including the leading dot.
	Extensions []string
}

// DefaultNaming returns the "<stem>.<Role>.<ext>" convention with png first,
// then jpg and jpeg. Every call returns a fresh copy.
func DefaultNaming() Naming {
	return Naming{
		Tokens:     [len(Roles)]string{"AmbientOcclusion", "Roughness", "Metalness"},
		Extensions: []string{".png", ".jpg", ".jpeg"},
	}
}

func (n Naming) Token(r Role) string {
	return n.Tokens[r]
}

// Pattern is the file name suffix for role r with extension ext.
func (n Naming) Pattern(r Role, ext string) string {
	return n.Token(r) + ext
}

// normalize fills unset tokens and extensions from DefaultNaming.
func (n *Naming) normalize() Naming {
	def := DefaultNaming()
	if n == nil {
		return def
	}

	out := n.clone()
	for _, r := range Roles {
		if out.Tokens[r] == "" {
			out.Tokens[r] = def.Tokens[r]
		}
	}
	if len(out.Extensions) == 0 {
		out.Extensions = def.Extensions
	}
	for i, ext := range out.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			out.Extensions[i] = "." + ext
		}
	}

	return out
}

func (n Naming) clone() Naming {
	out := n
	out.Extensions = slices.Clone(n.Extensions)
	return out
}

func (n Naming) validate() error {
	for _, r := range Roles {
		for _, o := range Roles[r+1:] {
			if n.Tokens[r] == n.Tokens[o] {
				return fmt.Errorf("%w: %s and %s share the naming token %q", ErrUsage, r, o, n.Tokens[r])
			}
		}
	}
	for _, ext := range n.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: empty file extension in naming convention", ErrUsage)
		}
	}
	return nil
}
