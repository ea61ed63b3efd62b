package parser

// Keyword vocabularies for intent classification. All membership tests are
// case-insensitive substring checks against the lower-cased transcript;
// no tokenization or stemming.

var businessPlanKeywords = []string{
	"business plan",
	"executive summary",
	"market analysis",
	"financial plan",
	"marketing strategy",
	"operations",
	"management",
	"timeline",
	"risk analysis",
	"sustainability",
	"business",
	"plan",
}

var inventoryKeywords = []string{
	"inventory",
	"item",
	"supply",
	"supplies",
	"equipment",
	"tool",
	"tools",
	"material",
	"materials",
	"resource",
	"resources",
	"product",
	"products",
	"need",
	"buy",
	"purchase",
	"order",
	"acquire",
	"get",
	"stock",
	"store",
	"warehouse",
	"storage",
	"catalog",
	"catalogue",
}

var taskKeywords = []string{
	"task",
	"todo",
	"to-do",
	"to do",
	"remind me to",
	"remember to",
	"don't forget to",
	"schedule",
	"plan",
	"action item",
	"assignment",
	"job",
	"chore",
	"errand",
	"add a task",
	"create a task",
	"make a task",
	"set a task",
}

// InfraKind is the infrastructure sub-domain matched during classification.
// It drives task-title templating for electricity and water.
type InfraKind string

const (
	InfraElectricity InfraKind = "electricity"
	InfraWater       InfraKind = "water"
	InfraBuildings   InfraKind = "buildings"
	InfraSoil        InfraKind = "soil"
)

type infraDomain struct {
	kind     InfraKind
	keywords []string
}

// infraDomains are evaluated in order; the first matching sub-domain wins.
var infraDomains = []infraDomain{
	{InfraElectricity, []string{"electricity", "power", "electrical", "wiring", "solar"}},
	{InfraWater, []string{"water", "plumbing", "irrigation", "well", "pump"}},
	{InfraBuildings, []string{"barn", "shed", "greenhouse", "structure", "building"}},
	{InfraSoil, []string{"soil", "compost", "garden bed", "mulch"}},
}

// looseInventoryKeywords trigger the reduced inventory pass when nothing
// stronger matched (classifier rule 6).
var looseInventoryKeywords = []string{"buy", "purchase", "need", "get", "order"}

var ownedKeywords = []string{
	"owned",
	"own",
	"have",
	"possess",
	"acquired",
	"purchased",
	"bought",
	"in stock",
	"in inventory",
	"already have",
	"already own",
	"already purchased",
	"already bought",
	"already acquired",
	"in possession",
	"in my possession",
}

var borrowedKeywords = []string{
	"borrowed",
	"rented",
	"leased",
	"loaned",
	"temporary",
	"rental",
	"lease",
	"on loan",
	"borrowing",
	"renting",
	"leasing",
}

var fundraiserKeywords = []string{"fundraiser", "fund raise", "need funding", "raise money"}

var urgentKeywords = []string{"urgent", "asap", "emergency"}

var highKeywords = []string{"high priority", "important"}

var lowKeywords = []string{"low priority", "whenever"}

// inventoryStopWords are dropped token-by-token when no title pattern matched
// and the title must be recovered from the whole transcript.
var inventoryStopWords = map[string]struct{}{
	"add":       {},
	"buy":       {},
	"purchase":  {},
	"order":     {},
	"acquire":   {},
	"get":       {},
	"need":      {},
	"needed":    {},
	"to":        {},
	"my":        {},
	"the":       {},
	"a":         {},
	"an":        {},
	"some":      {},
	"please":    {},
	"inventory": {},
	"item":      {},
	"items":     {},
	"supply":    {},
	"supplies":  {},
	"equipment": {},
	"stock":     {},
	"store":     {},
	"storage":   {},
	"warehouse": {},
	"catalog":   {},
	"catalogue": {},
}

// productWhitelist protects product names whose first token is a bare "i"
// prefix from the leading-"I" strip in CleanItemTitle.
var productWhitelist = []string{
	"ipod", "iphone", "ipad", "imac", "itunes", "iwatch", "iwallet",
	"icloud", "intel", "ikea", "ibm", "irobot", "isuzu", "ibanez",
}
