package entities

// Section ids, in generation order.
const (
	SectionMarket          = "market"
	SectionCustomers       = "customers"
	SectionCompetitors     = "competitors"
	SectionBrandArchetype  = "brandArchetype"
	SectionBrandBook       = "brandBook"
	SectionBusinessPlan    = "businessPlan"
	SectionGapAnalysis     = "gapAnalysis"
	SectionGoToMarket      = "goToMarket"
	SectionFinancial       = "financial"
	SectionLegalCompliance = "legalCompliance"
	SectionPitchDeck       = "pitchDeck"
	SectionTeam            = "team"
)

// SectionSpec is a static report section definition.
// DependsOn lists the earlier sections whose output the prompt embeds.
type SectionSpec struct {
	ID        string
	Name      string
	MaxTokens int
	DependsOn []string
}

var sections = []SectionSpec{
	{ID: SectionMarket, Name: "Market Research", MaxTokens: 3000},
	{ID: SectionCustomers, Name: "Customer Personas", MaxTokens: 3000, DependsOn: []string{SectionMarket}},
	{ID: SectionCompetitors, Name: "Competitive Analysis", MaxTokens: 3000, DependsOn: []string{SectionMarket, SectionCustomers}},
	{ID: SectionBrandArchetype, Name: "Brand Archetype", MaxTokens: 2000, DependsOn: []string{SectionCustomers, SectionCompetitors}},
	{ID: SectionBrandBook, Name: "Brand Book", MaxTokens: 3000, DependsOn: []string{SectionBrandArchetype, SectionCustomers}},
	{ID: SectionBusinessPlan, Name: "Business Plan", MaxTokens: 4000, DependsOn: []string{SectionMarket, SectionCustomers, SectionCompetitors}},
	{ID: SectionGapAnalysis, Name: "Gap Analysis", MaxTokens: 2500, DependsOn: []string{SectionMarket, SectionCompetitors, SectionBusinessPlan}},
	{ID: SectionGoToMarket, Name: "Go-To-Market Strategy", MaxTokens: 3500, DependsOn: []string{SectionCustomers, SectionBrandBook, SectionBusinessPlan}},
	{ID: SectionFinancial, Name: "Financial Projections", MaxTokens: 4000, DependsOn: []string{SectionMarket, SectionBusinessPlan, SectionGoToMarket}},
	{ID: SectionLegalCompliance, Name: "Legal & Compliance", MaxTokens: 2500, DependsOn: []string{SectionBusinessPlan}},
	{ID: SectionPitchDeck, Name: "Pitch Deck", MaxTokens: 3500, DependsOn: []string{SectionMarket, SectionBusinessPlan, SectionFinancial, SectionGoToMarket}},
	{ID: SectionTeam, Name: "Team & Hiring Plan", MaxTokens: 2500, DependsOn: []string{SectionBusinessPlan, SectionFinancial}},
}

// Sections returns a copy of the fixed, ordered section list.
func Sections() []SectionSpec {
	out := make([]SectionSpec, len(sections))
	copy(out, sections)
	return out
}

// SectionByID looks a section up by id.
func SectionByID(id string) (SectionSpec, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionSpec{}, false
}
