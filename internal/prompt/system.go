package prompt

// customSystem is used when the caller supplies their own prompt.
const customSystem = "You are a creative AI content generator."

// entry ties a content type to its persona, template and field table.
type entry struct {
	label    string
	fields   Fields
	system   string
	template string
}

// catalog is the closed set of content types. Adding a type means adding a
// constant in types.go and an entry here; TestCatalog_Complete guards both.
var catalog = map[ContentType]entry{
	TypeSlogan: {
		label:    "Slogans",
		fields:   Fields{Tone: true},
		system:   "You are a creative copywriter specializing in memorable slogans and taglines.",
		template: sloganTemplate,
	},
	TypeSocial: {
		label:    "Social Media Captions",
		fields:   Fields{TargetAudience: true, Tone: true, Platform: true},
		system:   "You are a social media marketing expert who creates engaging content.",
		template: socialTemplate,
	},
	TypeHashtags: {
		label:    "Hashtags",
		fields:   Fields{Platform: true},
		system:   "You are a social media strategist who creates trending hashtags.",
		template: hashtagsTemplate,
	},
	TypeProduct: {
		label:    "Product Descriptions",
		fields:   Fields{TargetAudience: true, Tone: true},
		system:   "You are an e-commerce copywriter who writes compelling product descriptions.",
		template: productTemplate,
	},
	TypeEmail: {
		label:    "Email Marketing Copy",
		fields:   Fields{TargetAudience: true, Tone: true},
		system:   "You are an email marketing specialist who creates high-converting email copy.",
		template: emailTemplate,
	},
}

// User prompt templates. Optional fields render only when non-empty.
const (
	sloganTemplate = `Generate {{.Count}} catchy {{plural .Count "slogan" "slogans"}} for {{.BusinessName}}. ` +
		`Product/Service: {{.ProductInfo}}.` +
		`{{with .Tone}} Tone: {{.}}.{{end}}` +
		` Make them memorable, concise, and impactful. Return each slogan on a new line, numbered.`

	socialTemplate = `Generate {{.Count}} engaging social media {{plural .Count "caption" "captions"}} for {{.BusinessName}}. ` +
		`Product/Service: {{.ProductInfo}}.` +
		`{{with .Platform}} Platform: {{.}}.{{end}}` +
		`{{with .TargetAudience}} Target Audience: {{.}}.{{end}}` +
		`{{with .Tone}} Tone: {{.}}.{{end}}` +
		` Make them compelling and platform-appropriate. Return each caption on a new line, numbered.`

	hashtagsTemplate = `Generate {{.Count}} {{plural .Count "set" "sets"}} of relevant hashtags for {{.BusinessName}}. ` +
		`Product/Service: {{.ProductInfo}}.` +
		`{{with .Platform}} Platform: {{.}}.{{end}}` +
		` Include a mix of popular and niche hashtags (5-10 per set). Return each set on a new line, numbered.`

	productTemplate = `Generate {{.Count}} compelling product {{plural .Count "description" "descriptions"}} for {{.BusinessName}}. ` +
		`Product/Service: {{.ProductInfo}}.` +
		`{{with .TargetAudience}} Target Audience: {{.}}.{{end}}` +
		`{{with .Tone}} Tone: {{.}}.{{end}}` +
		` Make them persuasive and highlight key benefits. Return each description on a new line, numbered.`

	emailTemplate = `Generate {{.Count}} email marketing {{plural .Count "copy" "copies"}} for {{.BusinessName}}. ` +
		`Product/Service: {{.ProductInfo}}.` +
		`{{with .TargetAudience}} Target Audience: {{.}}.{{end}}` +
		`{{with .Tone}} Tone: {{.}}.{{end}}` +
		` Include subject line and body. Make them engaging and action-oriented.` +
		` Return each email on a new line, numbered, with 'Subject:' and 'Body:' labels.`
)
