package deal

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearRegex   = regexp.MustCompile(`20\d{2}`)
	screenRegex = regexp.MustCompile(`(\d{2})"`)
	memoryRegex = regexp.MustCompile(`(?i)(\d+)\s*GB\b.*?(?:RAM|Memory)`)
	// The capacity unit must sit right before "SSD" so that a RAM figure
	// earlier in the title is not mistaken for storage.
	storageRegex = regexp.MustCompile(`(?i)(\d+)\s*(GB|TB)\s*SSD`)
)

// ExtractSpec parses a listing title into a structured spec record. It never
// fails: each attribute falls back to its zero sentinel independently when
// the title does not mention it.
func ExtractSpec(title string) SpecRecord {
	return SpecRecord{
		Model:      extractModel(title),
		Year:       extractYear(title),
		ScreenSize: extractScreenSize(title),
		MemoryGB:   extractMemory(title),
		StorageGB:  extractStorage(title),
	}
}

// extractModel classifies the MacBook family. Longest family name first, so
// "macbook pro" never falls into the generic "macbook" bucket.
func extractModel(title string) Model {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "macbook pro"):
		return ModelMacBookPro
	case strings.Contains(lower, "macbook air"):
		return ModelMacBookAir
	case strings.Contains(lower, "macbook"):
		return ModelMacBook
	default:
		return ModelUnknown
	}
}

// extractYear picks the first 20xx run in the title. Known limitation: any
// unrelated 4-digit number starting with 20 (a price, a battery rating)
// matches too.
func extractYear(title string) int {
	match := yearRegex.FindString(title)
	if match == "" {
		return 0
	}
	year, _ := strconv.Atoi(match)
	return year
}

func extractScreenSize(title string) int {
	match := screenRegex.FindStringSubmatch(title)
	if match == nil {
		return 0
	}
	size, _ := strconv.Atoi(match[1])
	return size
}

func extractMemory(title string) int {
	match := memoryRegex.FindStringSubmatch(title)
	if match == nil {
		return 0
	}
	memory, _ := strconv.Atoi(match[1])
	return memory
}

func extractStorage(title string) int {
	match := storageRegex.FindStringSubmatch(title)
	if match == nil {
		return 0
	}
	storage, _ := strconv.Atoi(match[1])
	if strings.EqualFold(match[2], "TB") {
		storage *= 1024
	}
	return storage
}
