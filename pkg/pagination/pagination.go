package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Offset int
	Limit  int
}

// Normalize clamps a negative offset to zero and replaces a non-positive
// limit with DefaultLimit.
func (p Params) Normalize() Params {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// Window returns the slice of data selected by p. An offset past the end
// yields an empty slice and the limit never reads beyond the end.
func Window[T any](data []T, p Params) []T {
	p = p.Normalize()
	if p.Offset >= len(data) {
		return []T{}
	}
	end := len(data)
	if remaining := end - p.Offset; p.Limit < remaining {
		end = p.Offset + p.Limit
	}
	return data[p.Offset:end]
}
