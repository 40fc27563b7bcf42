package menu

// ThemeClasses is the fixed set of presentation slots a theme fills in.
// The public menu client applies these verbatim.
type ThemeClasses struct {
	Container      string `json:"container"`
	Header         string `json:"header"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Card           string `json:"card"`
	CategoryHeader string `json:"category_header"`
	CategoryTitle  string `json:"category_title"`
	ProductCard    string `json:"product_card"`
	ProductTitle   string `json:"product_title"`
	ProductPrice   string `json:"product_price"`
	OfferCard      string `json:"offer_card"`
	Accent         string `json:"accent"`
}

type ThemeBundle struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Classes     ThemeClasses `json:"classes"`
}

// DefaultTheme is the fallback for restaurants with no theme or an
// unknown theme id.
const DefaultTheme = "classic"

// themeOrder fixes the enumeration order for the operator theme picker.
var themeOrder = []string{"classic", "modern", "luxury", "rustic", "vibrant"}

var themes = map[string]ThemeBundle{
	"classic": {
		ID:          "classic",
		Name:        "Classic Elegance",
		Description: "Timeless sophistication with clean lines",
		Classes: ThemeClasses{
			Container:      "bg-slate-50 text-slate-900",
			Header:         "bg-white border-slate-200 shadow-lg",
			Title:          "font-light tracking-tight text-slate-900",
			Subtitle:       "text-slate-600 font-medium",
			Card:           "bg-white border-slate-200 rounded-2xl shadow-xl",
			CategoryHeader: "hover:bg-slate-50 rounded-xl",
			CategoryTitle:  "font-medium text-slate-900 tracking-wide",
			ProductCard:    "hover:bg-slate-50 border-slate-100 rounded-xl",
			ProductTitle:   "font-medium text-slate-900",
			ProductPrice:   "font-semibold text-slate-800 tracking-wide",
			OfferCard:      "bg-slate-50 border-slate-200 rounded-2xl shadow-lg",
			Accent:         "text-slate-700",
		},
	},
	"modern": {
		ID:          "modern",
		Name:        "Modern Luxury",
		Description: "Contemporary design with premium touches",
		Classes: ThemeClasses{
			Container:      "bg-zinc-50 text-zinc-900",
			Header:         "bg-white border-zinc-200 shadow-2xl",
			Title:          "font-extralight tracking-tighter text-zinc-900",
			Subtitle:       "text-zinc-600 font-light tracking-wide",
			Card:           "bg-white border-zinc-200 rounded-3xl shadow-2xl",
			CategoryHeader: "hover:bg-zinc-50 rounded-2xl",
			CategoryTitle:  "font-light text-zinc-900 tracking-wider",
			ProductCard:    "hover:bg-zinc-50 border-zinc-100 rounded-2xl",
			ProductTitle:   "font-light text-zinc-900 tracking-wide",
			ProductPrice:   "font-medium text-zinc-800 tracking-wider",
			OfferCard:      "bg-blue-50 border-blue-200 rounded-3xl shadow-xl",
			Accent:         "text-blue-600",
		},
	},
	"luxury": {
		ID:          "luxury",
		Name:        "Royal Gold",
		Description: "Opulent elegance with gold accents",
		Classes: ThemeClasses{
			Container:      "bg-amber-50 text-amber-900",
			Header:         "bg-amber-100 border-amber-200 shadow-2xl",
			Title:          "font-serif font-bold text-amber-900 tracking-tight",
			Subtitle:       "text-amber-700 font-medium tracking-wide",
			Card:           "bg-amber-50 border-amber-200 rounded-3xl shadow-2xl",
			CategoryHeader: "hover:bg-amber-50 rounded-2xl",
			CategoryTitle:  "font-serif font-semibold text-amber-900 tracking-wide",
			ProductCard:    "hover:bg-amber-50 border-amber-200 rounded-2xl",
			ProductTitle:   "font-serif font-semibold text-amber-900",
			ProductPrice:   "font-serif font-bold text-amber-800 tracking-wide",
			OfferCard:      "bg-amber-100 border-amber-300 rounded-3xl shadow-2xl",
			Accent:         "text-amber-700",
		},
	},
	"rustic": {
		ID:          "rustic",
		Name:        "Warmth & Heritage",
		Description: "Cozy tradition with earthy warmth",
		Classes: ThemeClasses{
			Container:      "bg-orange-50 text-orange-900",
			Header:         "bg-orange-100 border-orange-200 shadow-2xl",
			Title:          "font-bold text-orange-900 tracking-tight",
			Subtitle:       "text-orange-700 font-semibold tracking-wide",
			Card:           "bg-orange-50 border-orange-200 rounded-3xl shadow-2xl",
			CategoryHeader: "hover:bg-orange-100 rounded-2xl",
			CategoryTitle:  "font-bold text-orange-900 tracking-wide",
			ProductCard:    "hover:bg-orange-100 border-orange-200 rounded-2xl",
			ProductTitle:   "font-bold text-orange-900",
			ProductPrice:   "font-bold text-orange-800 tracking-wide",
			OfferCard:      "bg-orange-100 border-orange-300 rounded-3xl shadow-2xl",
			Accent:         "text-orange-700",
		},
	},
	"vibrant": {
		ID:          "vibrant",
		Name:        "Artistic Flair",
		Description: "Bold creativity with vibrant energy",
		Classes: ThemeClasses{
			Container:      "bg-purple-50 text-purple-900",
			Header:         "bg-purple-100 border-purple-200 shadow-2xl",
			Title:          "font-bold text-purple-600 tracking-tight",
			Subtitle:       "text-purple-700 font-semibold tracking-wide",
			Card:           "bg-white border-purple-200 rounded-3xl shadow-2xl",
			CategoryHeader: "hover:bg-purple-100 rounded-2xl",
			CategoryTitle:  "font-bold text-purple-700 tracking-wide",
			ProductCard:    "hover:bg-purple-50 border-purple-200 rounded-2xl",
			ProductTitle:   "font-bold text-purple-900",
			ProductPrice:   "font-bold text-purple-600 tracking-wide",
			OfferCard:      "bg-purple-100 border-purple-300 rounded-3xl shadow-2xl",
			Accent:         "text-purple-600",
		},
	},
}

// ResolveTheme maps a restaurant's theme id to its bundle. Empty or unknown
// ids fall back to the classic bundle; resolution never fails.
func ResolveTheme(id string) ThemeBundle {
	if theme, ok := themes[id]; ok {
		return theme
	}
	return themes[DefaultTheme]
}

// Themes lists every bundle in picker order.
func Themes() []ThemeBundle {
	out := make([]ThemeBundle, 0, len(themeOrder))
	for _, id := range themeOrder {
		out = append(out, themes[id])
	}
	return out
}
