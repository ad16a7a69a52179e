package stats

// englishFrequencyPercent holds the standard English letter-frequency percentages
// (index 0='A' .. 25='Z'), used for the StatisticsProfile's chi_squared_english field.
// The multi-language scorer (package language) carries its own six-language copy of
// this kind of table for cross-language scoring; this one exists purely to give C1 a
// reference-quality chi-squared without depending on the scorer package.
var englishFrequencyPercent = [AlphabetSize]float64{
	8.167, // A
	1.492, // B
	2.782, // C
	4.253, // D
	12.702, // E
	2.228, // F
	2.015, // G
	6.094, // H
	6.966, // I
	0.153, // J
	0.772, // K
	4.025, // L
	2.406, // M
	6.749, // N
	7.507, // O
	1.929, // P
	0.095, // Q
	5.987, // R
	6.327, // S
	9.056, // T
	2.758, // U
	0.978, // V
	2.360, // W
	0.150, // X
	1.974, // Y
	0.074, // Z
}
