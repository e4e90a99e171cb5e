package manifest

import "strings"

// Family is the closed set of asset families a declaration can name.
// Tags outside the set map to FamilyUnknown.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyDiffusers
	FamilyWhisper
	FamilyCoqui
	FamilyGGML
)

// ParseFamily maps a family tag to its Family, case-insensitively.
func ParseFamily(tag string) Family {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "diffusers":
		return FamilyDiffusers
	case "whisper":
		return FamilyWhisper
	case "coqui":
		return FamilyCoqui
	case "ggml":
		return FamilyGGML
	default:
		return FamilyUnknown
	}
}

func (f Family) String() string {
	switch f {
	case FamilyDiffusers:
		return "diffusers"
	case FamilyWhisper:
		return "whisper"
	case FamilyCoqui:
		return "coqui"
	case FamilyGGML:
		return "ggml"
	default:
		return "unknown"
	}
}
