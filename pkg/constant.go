package pkg

// enum of search_method
type SearchMethod uint8

const (
	DEPTH_FIRST SearchMethod = iota
	LOOKAHEAD
	UNKNOWN_METHOD
)

const (
	// hard cap used by the sample flight database
	DEFAULT_GRAPH_CAPACITY = 100

	MAX_LOCATION_NAME_LENGTH = 20

	INVALID_EDGE_ID = -1
)

const (
	DEBUG = false
)

func GetSearchMethod(method string) SearchMethod {
	switch method {
	case "depth_first", "dfs", "":
		return DEPTH_FIRST
	case "lookahead", "bfs":
		return LOOKAHEAD
	default:
		return UNKNOWN_METHOD
	}
}

func (m SearchMethod) String() string {
	switch m {
	case DEPTH_FIRST:
		return "depth_first"
	case LOOKAHEAD:
		return "lookahead"
	default:
		return "unknown"
	}
}
