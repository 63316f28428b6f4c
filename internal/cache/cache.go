// ABOUTME: Exact-match answer cache for known questions, bypassing the model entirely
// ABOUTME: Static data loaded once at startup; lookups are pure and side-effect free
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultEntries are the known question → answer pairs shipped with the
// chatbot. A hit here costs zero model tokens.
func DefaultEntries() map[string]string {
	return map[string]string{
		"مصاريف عربي انتظام": "مصاريف النظام العربي انتظام: **3,650 جنيه سنوياً** 📚",
		"مصاريف عربي انتساب": "مصاريف النظام العربي انتساب: **4,120 جنيه سنوياً** 📚",
		"مصاريف عربي":        "مصاريف النظام العربي:\n• انتظام: **3,650 جنيه سنوياً**\n• انتساب: **4,120 جنيه سنوياً** 📚",
		"موقع الكلية":        "الكلية في موقعين:\n• **النظام العربي والإنجليزي**: حلوان\n• **BIS و FMI و SBS**: الزمالك 📍",
		"فين الكلية":         "الكلية في موقعين:\n• **النظام العربي والإنجليزي**: حلوان\n• **BIS و FMI و SBS**: الزمالك 📍",
	}
}

// Cache holds the normalized known-question mapping.
type Cache struct {
	entries map[string]string
}

// New builds a Cache from raw question → answer pairs. Keys are
// normalized up front; two raw keys collapsing to the same normalized
// form is a configuration error.
func New(entries map[string]string) (*Cache, error) {
	normalized := make(map[string]string, len(entries))
	for key, answer := range entries {
		nk := Normalize(key)
		if nk == "" {
			return nil, fmt.Errorf("cache key %q normalizes to empty string", key)
		}
		if _, exists := normalized[nk]; exists {
			return nil, fmt.Errorf("duplicate cache key after normalization: %q", nk)
		}
		normalized[nk] = answer
	}
	return &Cache{entries: normalized}, nil
}

// LoadEntries reads question → answer pairs from a JSON object file.
func LoadEntries(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}
	return entries, nil
}

// Lookup returns the cached answer for a question, matching exactly
// against the normalized key set. No fuzzy or substring matching.
func (c *Cache) Lookup(question string) (string, bool) {
	answer, ok := c.entries[Normalize(question)]
	return answer, ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Keys returns the normalized keys in sorted order, for display.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Normalize prepares a question for exact-match comparison: trim
// surrounding whitespace, case-fold, and collapse runs of internal
// whitespace to single spaces. Arabic has no letter case, so folding
// only affects Latin-script input.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
