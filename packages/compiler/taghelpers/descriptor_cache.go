package taghelpers

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

// DescriptorCache interns tag helper descriptors so equal descriptors
// discovered by separate passes share one instance. It is safe for
// concurrent use.
type DescriptorCache struct {
	comparer *TagHelperDescriptorComparer
	entries  *xsync.MapOf[uint64, []*TagHelperDescriptor]
}

// NewDescriptorCache creates a cache keyed by comparer. A nil comparer means
// DefaultTagHelperDescriptorComparer.
func NewDescriptorCache(comparer *TagHelperDescriptorComparer) *DescriptorCache {
	if comparer == nil {
		comparer = DefaultTagHelperDescriptorComparer
	}
	return &DescriptorCache{
		comparer: comparer,
		entries:  xsync.NewMapOf[uint64, []*TagHelperDescriptor](),
	}
}

// Intern returns the cached descriptor equal to descriptor, adding descriptor
// when there is none.
func (c *DescriptorCache) Intern(descriptor *TagHelperDescriptor) *TagHelperDescriptor {
	var interned *TagHelperDescriptor
	c.entries.Compute(c.comparer.Hash(descriptor), func(bucket []*TagHelperDescriptor, loaded bool) ([]*TagHelperDescriptor, bool) {
		for _, cached := range bucket {
			if c.comparer.Equal(cached, descriptor) {
				interned = cached
				return bucket, false
			}
		}
		interned = descriptor
		return append(slices.Clip(bucket), descriptor), false
	})
	return interned
}

// InternAll interns every descriptor in place order and returns the results.
func (c *DescriptorCache) InternAll(descriptors []*TagHelperDescriptor) []*TagHelperDescriptor {
	result := make([]*TagHelperDescriptor, len(descriptors))
	for i, d := range descriptors {
		result[i] = c.Intern(d)
	}
	return result
}

// Len returns the number of distinct descriptors held.
func (c *DescriptorCache) Len() int {
	n := 0
	c.entries.Range(func(_ uint64, bucket []*TagHelperDescriptor) bool {
		n += len(bucket)
		return true
	})
	return n
}
