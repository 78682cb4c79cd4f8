package icontheme

// SizeType selects how a size bucket decides whether a requested pixel
// size fits. It is one of Fixed, Scalable or Threshold; unrecognised
// values in an index file fall back to Threshold.
type SizeType uint8

const (
	// Fixed buckets accept exactly their nominal size.
	Fixed SizeType = iota
	// Scalable buckets accept any size within [MinSize, MaxSize].
	Scalable
	// Threshold buckets accept sizes within a symmetric margin around
	// the nominal size.
	Threshold
)

// String returns the spelling used by index files.
func (t SizeType) String() string {
	switch t {
	case Fixed:
		return "Fixed"
	case Scalable:
		return "Scalable"
	default:
		return "Threshold"
	}
}

// Subdir describes one size bucket declared by a theme: a relative
// directory holding icons of one nominal size, plus the policy for
// deciding how well a requested size fits.
type Subdir struct {
	Name    string
	Size    int
	Context string
	Type    SizeType

	// MinSize and MaxSize are meaningful for Scalable buckets only.
	MinSize int
	MaxSize int
	// Threshold is meaningful for Threshold buckets only.
	Threshold int
}

// Matches reports whether the bucket accepts the requested size as an
// exact match.
func (s Subdir) Matches(size int) bool {
	switch s.Type {
	case Fixed:
		return size == s.Size
	case Scalable:
		return s.MinSize <= size && size <= s.MaxSize
	default:
		return s.Size-s.Threshold <= size && size <= s.Size+s.Threshold
	}
}

// Distance returns how far the requested size falls outside the bucket.
// It is zero whenever Matches holds and grows linearly with the gap to
// the nearest accepted size. Used to pick the closest bucket when no
// bucket matches exactly.
func (s Subdir) Distance(size int) int {
	switch s.Type {
	case Fixed:
		if size < s.Size {
			return s.Size - size
		}
		return size - s.Size
	case Scalable:
		if size < s.MinSize {
			return s.MinSize - size
		}
		if size > s.MaxSize {
			return size - s.MaxSize
		}
		return 0
	default:
		// Measured from the threshold-expanded band, not the nominal size.
		if size < s.Size-s.Threshold {
			return s.Size - s.Threshold - size
		}
		if size > s.Size+s.Threshold {
			return size - (s.Size + s.Threshold)
		}
		return 0
	}
}
