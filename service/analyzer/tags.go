package analyzer

import (
	"sort"

	"github.com/Batu1-1an/AWS-Cost-Optimization-Dashboard/model"
)

// MissingTags returns the required tag keys not present on the resource,
// sorted for deterministic output. Keys are compared case-sensitively. An
// empty required set is satisfied by everything; a resource with no tags is
// missing every required key.
func MissingTags(tags []model.Tag, required []string) []string {
	missing := make([]string, 0, len(required))
	if len(required) == 0 {
		return missing
	}

	present := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		present[tag.Key] = struct{}{}
	}

	seen := make(map[string]struct{}, len(required))
	for _, key := range required {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := present[key]; !ok {
			missing = append(missing, key)
		}
	}

	sort.Strings(missing)
	return missing
}
