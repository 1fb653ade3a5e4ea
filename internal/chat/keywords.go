package chat

// keywordEntry maps a symptom/condition phrase to the catalog product names
// answering it, in recommendation order.
type keywordEntry struct {
	Phrase   string
	Products []string
}

// specialKeywords is scanned in order; the first phrase contained in the
// query decides the product list, so more specific phrases go first.
var specialKeywords = []keywordEntry{
	{"loãng xương", []string{"Alendronate", "Risedronate", "Calcium Carbonate", "Vitamin D3"}},
	{"đau đầu", []string{"Paracetamol", "Ibuprofen", "Aspirin"}},
	{"dạ dày", []string{"Omeprazole", "Phosphalugel", "Yumangel"}},
	{"dị ứng", []string{"Loratadine", "Cetirizine"}},
}

// conditionKeywords switch the composer to the numbered-list rendering when
// a question matches more than one product.
var conditionKeywords = []string{"loãng xương", "đau đầu", "dạ dày", "dị ứng"}
