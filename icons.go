package sitegen

// Icon identifies the glyph shown on an about-page value card.
type Icon int

const (
	IconBookOpen Icon = iota
	IconUsers
	IconTrendingUp
	IconTarget
)

var iconNames = map[string]Icon{
	"BookOpen":   IconBookOpen,
	"Users":      IconUsers,
	"TrendingUp": IconTrendingUp,
	"Target":     IconTarget,
}

// ParseIcon maps an authored icon name to an Icon. Unknown names get
// IconBookOpen.
func ParseIcon(name string) Icon {
	if icon, ok := iconNames[name]; ok {
		return icon
	}
	return IconBookOpen
}

func (i Icon) String() string {
	switch i {
	case IconUsers:
		return "Users"
	case IconTrendingUp:
		return "TrendingUp"
	case IconTarget:
		return "Target"
	default:
		return "BookOpen"
	}
}
