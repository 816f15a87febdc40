package sigforge

// Field identifies one slot of the signature record. The string values
// match the wire names the editor UI uses.
type Field string

const (
	FieldName    Field = "name"
	FieldTitle   Field = "title"
	FieldCompany Field = "company"
	FieldPhone   Field = "phone"
	FieldTwitter Field = "twitter"
	FieldWebsite Field = "website"
	FieldLogoURL Field = "logoUrl"
)

// Fields lists every record field in display order.
var Fields = []Field{
	FieldName, FieldTitle, FieldCompany,
	FieldPhone, FieldTwitter, FieldWebsite,
	FieldLogoURL,
}

// SignatureData is the signature record. Every field is always a string;
// emptiness means "not provided". Values are stored verbatim as typed -
// trimming happens only inside validation rules and the serializer.
type SignatureData struct {
	Name    string
	Title   string
	Company string
	Phone   string
	Twitter string
	Website string
	LogoURL string
}

// Get returns the value of the named field. Unknown fields read as empty.
func (d SignatureData) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldTitle:
		return d.Title
	case FieldCompany:
		return d.Company
	case FieldPhone:
		return d.Phone
	case FieldTwitter:
		return d.Twitter
	case FieldWebsite:
		return d.Website
	case FieldLogoURL:
		return d.LogoURL
	default:
		return ""
	}
}

func (d *SignatureData) set(f Field, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldTitle:
		d.Title = value
	case FieldCompany:
		d.Company = value
	case FieldPhone:
		d.Phone = value
	case FieldTwitter:
		d.Twitter = value
	case FieldWebsite:
		d.Website = value
	case FieldLogoURL:
		d.LogoURL = value
	}
}

// PresetLogo is a built-in logo choice.
type PresetLogo struct {
	ID    string
	Label string
	URL   string
}

// DefaultLogos are the preset logo choices offered by the editor. The
// "none" preset clears the logo.
var DefaultLogos = []PresetLogo{
	{ID: "none", Label: "No Logo", URL: ""},
	{ID: "vercel", Label: "Vercel", URL: "https://assets.vercel.com/image/upload/v1588805858/repositories/vercel/logo.png"},
}

// PresetByID looks up a preset logo.
func PresetByID(id string) (PresetLogo, bool) {
	for _, p := range DefaultLogos {
		if p.ID == id {
			return p, true
		}
	}
	return PresetLogo{}, false
}
