package dataset

// Fixed categorical label tables. Values outside a table keep their raw
// numeric value for aggregation; only the display label is absent.
var (
	encryptionLabels = map[int]string{
		0: "No Encryption",
		1: "With Encryption",
	}

	compressionLabels = map[int]string{
		0: "No Compression",
		5: "Medium (5)",
		9: "High (9)",
	}

	entrySizeLabels = map[int]string{
		1024: "1KB",
		2048: "2KB",
		4096: "4KB",
	}
)

// Label returns the display label for a dimension value and whether the
// value is in the fixed mapping. Dimensions without a label table
// (batch_size, consumers) always report false.
func Label(d Dimension, value int) (string, bool) {
	var table map[int]string
	switch d {
	case Encryption:
		table = encryptionLabels
	case Compression:
		table = compressionLabels
	case EntrySize:
		table = entrySizeLabels
	default:
		return "", false
	}
	label, ok := table[value]
	return label, ok
}
