package domain

// Seed returns the fixed startup dataset: twelve Danish tourist attractions
// in a fixed order. Interoperability tests depend on these exact values,
// so the records must not be reworded or reordered.
func Seed() []Attraction {
	return []Attraction{
		{Name: "Tivoli", City: "København", Description: "Forlystelsespark i hjertet af København.", Tags: []string{"forlystelser", "familie", "kultur"}},
		{Name: "Nyhavn", City: "København", Description: "Farverig havnepromenade med restauranter og barer.", Tags: []string{"havn", "restauranter", "historie"}},
		{Name: "Den Lille Havfrue", City: "København", Description: "Berømt statue inspireret af H.C. Andersen.", Tags: []string{"statue", "kultur", "historie"}},
		{Name: "ARoS", City: "Aarhus", Description: "Kunstmuseum i Aarhus med regnbuepanorama.", Tags: []string{"kunst", "museum", "arkitektur"}},
		{Name: "Egeskov Slot", City: "Kværndrup", Description: "Renæssanceslot på Fyn omgivet af voldgrav.", Tags: []string{"slot", "historie", "have"}},
		{Name: "Aalborg Zoo", City: "Aalborg", Description: "Dyrepark med mere end 100 forskellige arter.", Tags: []string{"dyr", "familie", "natur"}},
		{Name: "Moesgaard Museum", City: "Aarhus", Description: "Museum i Aarhus med arkæologi og kulturhistorie.", Tags: []string{"museum", "historie", "arkæologi"}},
		{Name: "Kronborg Slot", City: "Helsingør", Description: "Renæssanceslot i Helsingør, kendt fra Shakespeares Hamlet.", Tags: []string{"slot", "kultur", "historie"}},
		{Name: "Odense Zoo", City: "Odense", Description: "Familievenlig zoologisk have på Fyn.", Tags: []string{"dyr", "familie", "natur"}},
		{Name: "Hammershus", City: "Bornholm", Description: "Nordeuropas største borgruin på Bornholm.", Tags: []string{"ruin", "historie", "arkitektur"}},
		{Name: "Grenen", City: "Skagen", Description: "Danmarks nordligste punkt, hvor to have mødes.", Tags: []string{"natur", "strand", "geografi"}},
		{Name: "Legoland", City: "Billund", Description: "Forlystelsespark i Billund bygget af LEGO-klodser.", Tags: []string{"forlystelser", "familie", "leg"}},
	}
}
