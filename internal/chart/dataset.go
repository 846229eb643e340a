package chart

// Dataset is an insertion-ordered mapping from bucket key to count. Keys are
// unique; insertion order is preserved so that version charts keep tag order
// in the output.
type Dataset struct {
	keys   []string
	counts map[string]int
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{counts: make(map[string]int)}
}

// Add increments the count of a bucket by one.
func (d *Dataset) Add(key string) {
	d.AddN(key, 1)
}

// AddN increments the count of a bucket by n, creating the bucket if needed.
func (d *Dataset) AddN(key string, n int) {
	if _, ok := d.counts[key]; !ok {
		d.keys = append(d.keys, key)
	}

	d.counts[key] += n
}

// Count returns the count of a bucket, zero when absent.
func (d *Dataset) Count(key string) int {
	return d.counts[key]
}

// Keys returns the bucket keys in insertion order.
func (d *Dataset) Keys() []string {
	return d.keys
}

// Len returns the number of buckets.
func (d *Dataset) Len() int {
	return len(d.keys)
}

// Total returns the sum of all bucket counts.
func (d *Dataset) Total() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}

	return total
}
