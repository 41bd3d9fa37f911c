package transformation

// Position selects where the transformation is placed in the URL.
type Position int

const (
	// PositionPath embeds the transformation as a "/tr:..." path segment.
	PositionPath Position = iota
	// PositionQuery appends the transformation as the "tr" query parameter.
	PositionQuery
)

func (p Position) String() string {
	switch p {
	case PositionPath:
		return "path"
	case PositionQuery:
		return "query"
	default:
		return "unknown"
	}
}

type (
	// QueryParameter is one extra key/value pair appended to a URL.
	QueryParameter struct {
		Key   string
		Value string
	}

	// Options describes a URL to generate. Setters return a copy.
	//
	// Refer: https://docs.imagekit.io/features/image-transformations
	Options struct {
		urlEndpoint     string
		path            string
		src             string
		hasPath         bool
		hasSrc          bool
		transformation  Transformation
		position        Position
		queryParameters []QueryParameter
	}
)

func NewOptions(transformation Transformation) Options {
	return Options{transformation: transformation}
}

// URLEndpoint overrides the client's default endpoint for this URL.
func (o Options) URLEndpoint(endpoint string) Options {
	o.urlEndpoint = endpoint

	return o
}

// Path is the file path relative to the endpoint. Mutually exclusive with Src.
func (o Options) Path(path string) Options {
	o.path = path
	o.hasPath = true

	return o
}

// Src is an absolute URL of an already resolved image. Mutually exclusive
// with Path, and forces PositionQuery.
func (o Options) Src(src string) Options {
	o.src = src
	o.hasSrc = true

	return o
}

func (o Options) Transformation(transformation Transformation) Options {
	o.transformation = transformation

	return o
}

func (o Options) TransformationPosition(position Position) Options {
	o.position = position

	return o
}

// QueryParameter appends one extra query parameter. Values are not
// percent-encoded; callers needing reserved characters must pre-encode them.
func (o Options) QueryParameter(key, value string) Options {
	params := make([]QueryParameter, len(o.queryParameters), len(o.queryParameters)+1)
	copy(params, o.queryParameters)
	o.queryParameters = append(params, QueryParameter{Key: key, Value: value})

	return o
}

// QueryParameters replaces the extra query parameters, keeping their order.
func (o Options) QueryParameters(params ...QueryParameter) Options {
	cp := make([]QueryParameter, len(params))
	copy(cp, params)
	o.queryParameters = cp

	return o
}

// EffectivePosition is the position that will be used to render opts.
func EffectivePosition(opts Options) Position {
	if opts.hasSrc {
		return PositionQuery
	}

	return opts.position
}
