package transformation

import (
	"fmt"
	"strings"
)

// BuildURL renders opts into a transformation URL. defaultEndpoint is used
// unless opts carries its own endpoint. On failure no URL is returned.
func BuildURL(defaultEndpoint string, opts Options) (string, error) {
	if opts.hasPath && opts.hasSrc {
		return "", ErrConflictingInputs
	}

	transformed, err := opts.transformation.Transform()
	if err != nil {
		return "", err
	}

	endpoint := defaultEndpoint
	if opts.urlEndpoint != "" {
		endpoint = opts.urlEndpoint
	}

	endpoint = strings.TrimRight(endpoint, "/")
	query := joinQueryParameters(opts.queryParameters)
	position := EffectivePosition(opts)

	var builder strings.Builder

	switch position {
	case PositionPath:
		if !opts.hasPath {
			return "", fmt.Errorf("%w: path must be set for %s transformation position", ErrMissingRequiredField, position)
		}

		fmt.Fprintf(&builder, "%s/tr:%s/%s", endpoint, transformed, strings.Trim(opts.path, "/"))

		if query != "" {
			builder.WriteString("?")
			builder.WriteString(query)
		}

	case PositionQuery:
		if opts.hasSrc {
			fmt.Fprintf(&builder, "%s?tr=%s", opts.src, transformed)
		} else {
			if !opts.hasPath {
				return "", fmt.Errorf("%w: path or src must be set for %s transformation position", ErrMissingRequiredField, position)
			}

			fmt.Fprintf(&builder, "%s/%s?tr=%s", endpoint, strings.Trim(opts.path, "/"), transformed)
		}

		if query != "" {
			builder.WriteString("&")
			builder.WriteString(query)
		}

	default:
		return "", fmt.Errorf("unsupported transformation position %d", position)
	}

	return builder.String(), nil
}

func joinQueryParameters(params []QueryParameter) string {
	pairs := make([]string, 0, len(params))
	for _, param := range params {
		pairs = append(pairs, param.Key+"="+param.Value)
	}

	return strings.Join(pairs, "&")
}
