package seo

// MetaTag is one HTML <meta> element. Exactly one of Name/Property is set:
// Open Graph tags use property=, Twitter Card tags use name=. Consumers
// render tags in slice order.
type MetaTag struct {
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Content  string `json:"content"`
}

// Social preview images are rendered at the Open Graph recommended size.
const (
	ogImageWidth  = "1200"
	ogImageHeight = "630"
)

// OpenGraphData is the input tuple for an Open Graph tag set.
type OpenGraphData struct {
	Title       string
	Description string
	URL         string
	Type        string
	Image       string
	SiteName    string
}

// TwitterCardData is the input tuple for a Twitter Card tag set.
type TwitterCardData struct {
	Card        string
	Site        string
	Creator     string
	Title       string
	Description string
	Image       string
}

// OpenGraphTags produces the ordered Open Graph tag list for a page.
// Required tags come first, image and site name tags only when the inputs
// are present, og:locale always last.
func OpenGraphTags(data OpenGraphData, r *Resolver) []MetaTag {
	ogType := data.Type
	if ogType == "" {
		ogType = "website"
	}
	tags := []MetaTag{
		{Property: "og:type", Content: ogType},
		{Property: "og:url", Content: r.Resolve(data.URL)},
		{Property: "og:title", Content: data.Title},
		{Property: "og:description", Content: data.Description},
	}
	if data.Image != "" {
		tags = append(tags,
			MetaTag{Property: "og:image", Content: r.Resolve(data.Image)},
			MetaTag{Property: "og:image:width", Content: ogImageWidth},
			MetaTag{Property: "og:image:height", Content: ogImageHeight},
			MetaTag{Property: "og:image:alt", Content: data.Title},
		)
	}
	if data.SiteName != "" {
		tags = append(tags, MetaTag{Property: "og:site_name", Content: data.SiteName})
	}
	tags = append(tags, MetaTag{Property: "og:locale", Content: "en_US"})
	return tags
}

// TwitterCardTags produces the ordered Twitter Card tag list for a page.
func TwitterCardTags(data TwitterCardData, r *Resolver) []MetaTag {
	card := data.Card
	if card == "" {
		card = "summary_large_image"
	}
	tags := []MetaTag{
		{Name: "twitter:card", Content: card},
		{Name: "twitter:title", Content: data.Title},
		{Name: "twitter:description", Content: data.Description},
	}
	if data.Site != "" {
		tags = append(tags, MetaTag{Name: "twitter:site", Content: data.Site})
	}
	if data.Creator != "" {
		tags = append(tags, MetaTag{Name: "twitter:creator", Content: data.Creator})
	}
	if data.Image != "" {
		tags = append(tags,
			MetaTag{Name: "twitter:image", Content: r.Resolve(data.Image)},
			MetaTag{Name: "twitter:image:alt", Content: data.Title},
		)
	}
	return tags
}
