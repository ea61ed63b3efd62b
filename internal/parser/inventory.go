package parser

import (
	"regexp"
	"strconv"
	"strings"

	"homestead-voice-assistant/internal/model"
)

// titlePattern is one step of the ordered title extraction chain. Patterns
// are attempted in sequence; the first non-empty capture wins. Some patterns
// also force the item type to owned_resource.
type titlePattern struct {
	re         *regexp.Regexp
	forceOwned bool
}

// inventoryTitlePatterns is the full chain used by the inventory rule.
var inventoryTitlePatterns = []titlePattern{
	{re: regexp.MustCompile(`(?i)\badd\s+(.+?)\s+to\s+inventory\b`)},
	{re: regexp.MustCompile(`(?i)\badd\s+(.+?)\s+to\s+my\s+inventory\b`)},
	{re: regexp.MustCompile(`(?i)\badd\s+to\s+inventory\s+(.+)$`)},
	{re: regexp.MustCompile(`(?i)\bneed\s+to\s+buy\s+(.+)$`)},
	{re: regexp.MustCompile(`(?i)\bbuy\s+(.+)$`)},
	{re: regexp.MustCompile(`(?i)\bget\s+(.+)$`)},
	{re: regexp.MustCompile(`(?i)\badd\s+item\s+(.+)$`)},
	{re: regexp.MustCompile(`(?i)\bi\s+have\s+(.+)$`), forceOwned: true},
	{re: regexp.MustCompile(`(?i)\bi\s+own\s+(.+)$`), forceOwned: true},
	{re: regexp.MustCompile(`(?i)\badd\s+(.+?)\s+as\s+owned\b`), forceOwned: true},
	{re: regexp.MustCompile(`(?i)^(.+?)\s+is\s+owned\b`), forceOwned: true},
	{re: regexp.MustCompile(`(?i)\badd\s+(.+)$`)},
}

// looseTitlePatterns is the reduced chain used by the loose inventory rule:
// the buy/get/have/own steps of the full chain only.
var looseTitlePatterns = []titlePattern{
	inventoryTitlePatterns[3],
	inventoryTitlePatterns[4],
	inventoryTitlePatterns[5],
	inventoryTitlePatterns[7],
	inventoryTitlePatterns[8],
}

var (
	quantityRe        = regexp.MustCompile(`\d+`)
	tagClauseRe       = regexp.MustCompile(`(?i)\btag(?:ged)?\s+(?:as|it)\s+(.+)$`)
	leadingNumberRe   = regexp.MustCompile(`^\s*\d+\s+`)
	trailingInvRe     = regexp.MustCompile(`(?i)\s+to\s+(?:my\s+)?inventory\b.*$`)
	trailingFillerRe  = regexp.MustCompile(`(?i)\s+(?:to|for|in|on|at|by|with|the|a|an)\s*$`)
	fundraiserPhrases = regexp.MustCompile(`(?i)\b(?:fundraiser|fund raise|need funding|raise money)\b`)
)

// extractInventory pulls quantity, tags, fundraiser flag, item type and title
// out of the transcript using the given pattern chain.
func (p *Parser) extractInventory(u utterance, patterns []titlePattern) model.ParsedCommand {
	quantity := extractQuantity(u.raw)
	tags := extractTags(u.raw)
	fundraiser := containsAny(u.lowered, fundraiserKeywords)

	// Item type before title: some title patterns override it.
	itemType := classifyItemType(u.lowered)

	title, forcedOwned := extractInventoryTitle(u.raw, patterns)
	if forcedOwned {
		itemType = model.ItemTypeOwnedResource
	}
	title = postProcessTitle(title)

	payload := &model.InventoryPayload{
		Title:      title,
		ItemType:   itemType,
		Tags:       tags,
		Fundraiser: fundraiser,
	}
	// Invariant: exactly one quantity field is populated, selected by item type.
	switch itemType {
	case model.ItemTypeOwnedResource:
		payload.QuantityOwned = &quantity
	case model.ItemTypeBorrowedRental:
		payload.QuantityBorrowed = &quantity
	default:
		payload.QuantityNeeded = &quantity
	}
	if u.pctx != nil {
		payload.ProjectID = u.pctx.ID
	}

	return model.ParsedCommand{Intent: model.IntentInventory, Inventory: payload}
}

// extractQuantity returns the first integer literal in the transcript, or 1.
func extractQuantity(transcript string) int {
	m := quantityRe.FindString(transcript)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// extractTags parses a "tag as a, b, c" clause into trimmed tags, or nil.
func extractTags(transcript string) []string {
	m := tagClauseRe.FindStringSubmatch(transcript)
	if m == nil {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(m[1], ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// classifyItemType maps ownership vocabulary to the item type, defaulting to
// needed_supply.
func classifyItemType(lowered string) model.ItemType {
	if containsAny(lowered, ownedKeywords) {
		return model.ItemTypeOwnedResource
	}
	if containsAny(lowered, borrowedKeywords) {
		return model.ItemTypeBorrowedRental
	}
	return model.ItemTypeNeededSupply
}

// extractInventoryTitle runs the pattern chain over the original-case
// transcript. When no pattern yields a non-empty capture, the title is
// recovered by stripping stop words from the whole transcript.
func extractInventoryTitle(transcript string, patterns []titlePattern) (title string, forcedOwned bool) {
	for _, pat := range patterns {
		m := pat.re.FindStringSubmatch(transcript)
		if m == nil {
			continue
		}
		if captured := strings.TrimSpace(m[1]); captured != "" {
			return captured, pat.forceOwned
		}
	}
	return fallbackInventoryTitle(transcript), false
}

// fallbackInventoryTitle strips the tag clause, fundraiser phrases, integer
// literals and the fixed stop-word list from the transcript.
func fallbackInventoryTitle(transcript string) string {
	s := tagClauseRe.ReplaceAllString(transcript, "")
	s = fundraiserPhrases.ReplaceAllString(s, "")

	var kept []string
	for _, tok := range strings.Fields(s) {
		key := strings.ToLower(strings.Trim(tok, ",.!?"))
		if _, stop := inventoryStopWords[key]; stop {
			continue
		}
		if quantityRe.MatchString(key) && key == quantityRe.FindString(key) {
			continue // bare number token
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// postProcessTitle applies the common cleanup regardless of which pattern
// matched: leading bare number, trailing inventory clause, one trailing
// preposition or article, then the title normalizer.
func postProcessTitle(title string) string {
	title = leadingNumberRe.ReplaceAllString(title, "")
	title = trailingInvRe.ReplaceAllString(title, "")
	title = trailingFillerRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	return CleanItemTitle(title)
}
