// Package orm packs ambient occlusion, roughness and metalness maps into the
// red, green and blue channels of a single texture.
package orm

import "fmt"

// Role is the meaning of one packed channel.
// The numeric value is the channel index in the packed texture.
type Role int

const (
	AmbientOcclusion = Role(iota)
	Roughness
	Metalness
)

// Roles lists every role in channel order: red, green, blue.
var Roles = [...]Role{AmbientOcclusion, Roughness, Metalness}

func (r Role) String() string {
	switch r {
	case AmbientOcclusion:
		return "AmbientOcclusion"
	case Roughness:
		return "Roughness"
	case Metalness:
		return "Metalness"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Short is the label used in status output.
func (r Role) Short() string {
	switch r {
	case AmbientOcclusion:
		return "AO"
	default:
		return r.String()
	}
}

// Sources holds one optional file path per role. An empty string means absent.
type Sources [len(Roles)]string

func (s Sources) Get(r Role) string {
	return s[r]
}

func (s Sources) Has(r Role) bool {
	return s[r] != ""
}

// Missing lists the roles without a source, in channel order.
func (s Sources) Missing() []Role {
	var missing []Role
	for _, r := range Roles {
		if !s.Has(r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// Complete reports whether every role has a source.
func (s Sources) Complete() bool {
	return len(s.Missing()) == 0
}
