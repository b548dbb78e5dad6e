package taghelpers

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DescribeDifference returns a human readable diff of two descriptors, or ""
// when they are equal under CaseSensitiveTagHelperDescriptorComparer.
func DescribeDifference(x, y *TagHelperDescriptor) string {
	if CaseSensitiveTagHelperDescriptorComparer.Equal(x, y) {
		return ""
	}
	return cmp.Diff(x, y, cmpopts.EquateEmpty())
}
