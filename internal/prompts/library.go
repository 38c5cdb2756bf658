package prompts

// Section identifies one generated content section
type Section string

const (
	SectionBusinessResearch    Section = "businessResearch"
	SectionProductTitle        Section = "productTitle"
	SectionMetaDescription     Section = "metaDescription"
	SectionIntroduction        Section = "introduction"
	SectionFeaturesAndBenefits Section = "featuresAndBenefits"
	SectionTechnicalSpecs      Section = "technicalSpecs"
	SectionUseCases            Section = "useCases"
	SectionSEOKeywords         Section = "seoKeywords"
	SectionFAQs                Section = "faqs"
	SectionCallToActions       Section = "callToActions"
)

// AllSections lists every section in generation order
var AllSections = []Section{
	SectionBusinessResearch,
	SectionProductTitle,
	SectionMetaDescription,
	SectionIntroduction,
	SectionFeaturesAndBenefits,
	SectionTechnicalSpecs,
	SectionUseCases,
	SectionSEOKeywords,
	SectionFAQs,
	SectionCallToActions,
}

// Template holds the system and user prompt text for one section.
// Placeholder tokens like {PRODUCT_TITLE} are substituted at render time.
type Template struct {
	System string
	User   string
}

// Library is a named set of templates, one per section
type Library struct {
	Name      string
	templates map[Section]Template
}

// ForSection returns the template for a section. The boolean reports
// whether the library carries that section.
func (l *Library) ForSection(section Section) (Template, bool) {
	tpl, ok := l.templates[section]
	return tpl, ok
}

// Sections returns the sections this library can generate
func (l *Library) Sections() []Section {
	sections := make([]Section, 0, len(l.templates))
	for _, s := range AllSections {
		if _, ok := l.templates[s]; ok {
			sections = append(sections, s)
		}
	}
	return sections
}
