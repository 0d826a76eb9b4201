package pagegrid

// Kind identifies a node's role in the layout tree. The kind fixes the
// node's place in the schema (what parent it fits under and what
// children assignment creates beneath it) and its rendered markup.
type Kind int

// Node kinds in schema order. Card and Spacer are Column variants,
// CardRow is a Row variant, and CardSection and PageBreak are Section
// variants; variants share their base kind's slot in the schema.
const (
	KindPage Kind = iota
	KindSection
	KindCardSection
	KindRow
	KindCardRow
	KindColumn
	KindCard
	KindSpacer
	KindPageBreak
)

// String returns the kind's display name, used in tree summaries and
// default element identifiers.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindSpecs) {
		return "Unknown"
	}
	return kindSpecs[k].name
}

// kindSpec fixes the per-kind schema slot and HTML contract. All
// rendering is table-driven from these entries so identical trees
// always serialize identically.
type kindSpec struct {
	name string

	// base is the schema slot this kind occupies. Variants map to
	// their base kind; base kinds map to themselves.
	base Kind

	// child is the kind that keyed assignment and auto-layout create
	// beneath this node. Meaningless when contentHolder is true.
	child Kind

	// contentHolder marks kinds whose children are content leaves
	// rather than further nodes.
	contentHolder bool

	titleTag   string
	titleClass string
	bodyTag    string
	bodyClass  string
	bodyStyle  string
}

var kindSpecs = [...]kindSpec{
	KindPage: {
		name:       "Page",
		base:       KindPage,
		child:      KindSection,
		titleTag:   "h1",
		titleClass: "pg-page-title display-4 mb-4",
		bodyTag:    "main",
		bodyClass:  "pg-page-body container px-2",
	},
	KindSection: {
		name:       "Section",
		base:       KindSection,
		child:      KindRow,
		titleTag:   "h3",
		titleClass: "mb-3 pg-section-title",
		bodyTag:    "div",
		bodyClass:  "px-1 mb-3 pg-section-body",
		bodyStyle:  "align-items: flex-start;",
	},
	KindCardSection: {
		name:       "CardSection",
		base:       KindSection,
		child:      KindCardRow,
		titleTag:   "h3",
		titleClass: "mb-3 pg-section-title",
		bodyTag:    "div",
		bodyClass:  "px-1 mb-3 pg-section-body",
		bodyStyle:  "align-items: flex-start;",
	},
	KindRow: {
		name:       "Row",
		base:       KindRow,
		child:      KindColumn,
		titleTag:   "div",
		titleClass: "col-12 mt-2 mb-3 px-3 h5 pg-row-title",
		bodyTag:    "div",
		bodyClass:  "row px-1 pg-row-body",
		bodyStyle:  "align-items: flex-start;",
	},
	KindCardRow: {
		name:       "CardRow",
		base:       KindRow,
		child:      KindCard,
		titleTag:   "div",
		titleClass: "col-12 mt-2 mb-3 px-3 h5 pg-row-title",
		bodyTag:    "div",
		bodyClass:  "row px-1 pg-row-body",
		// Cards in one row stretch to equal height.
		bodyStyle: "align-items: stretch;",
	},
	KindColumn: {
		name:          "Column",
		base:          KindColumn,
		contentHolder: true,
		titleTag:      "h5",
		titleClass:    "mt-2 mb-3 px-1 pg-column-title",
		bodyTag:       "div",
		bodyClass:     "col-lg mx-2 mb-3 pg-column-body",
	},
	KindCard: {
		name:          "Card",
		base:          KindColumn,
		contentHolder: true,
		titleTag:      "h5",
		titleClass:    "card-title pg-card-title",
		bodyTag:       "div",
		bodyClass:     "col-lg mx-2 mb-3 border rounded pg-card-body",
		bodyStyle:     "padding: 1rem;",
	},
	KindSpacer: {
		name:          "Spacer",
		base:          KindColumn,
		contentHolder: true,
		bodyTag:       "div",
		bodyClass:     "col-lg mx-2 mb-3 pg-column-body",
	},
	KindPageBreak: {
		name:    "PageBreak",
		base:    KindSection,
		child:   KindRow,
		bodyTag: "div",
		// pg-page-break carries the print-only page-break rule in the
		// embedded stylesheet.
		bodyClass: "pg-page-break",
	},
}

// spec returns the kind's table entry.
func (k Kind) spec() kindSpec { return kindSpecs[k] }

// fits reports whether a child of this kind may occupy a slot that
// expects kind slot. Variants fit the slot of their base kind.
func (k Kind) fits(slot Kind) bool {
	return k.spec().base == slot.spec().base
}
