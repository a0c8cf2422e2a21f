package docs

const (
	apiTitle       = "Subscribers API"
	apiDescription = "CRUD service for channel subscribers."
	apiVersion     = "1.0.0"
)

var (
	subscriberSchema = &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"_id":               {Type: "string", Example: "63b6e8a3f2a40c51d4c79f1e"},
			"name":              {Type: "string", Example: "John"},
			"subscribedChannel": {Type: "string", Example: "Tech"},
		},
	}

	subscriberNameSchema = &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"name":              {Type: "string", Example: "John"},
			"subscribedChannel": {Type: "string", Example: "Tech"},
		},
	}

	createRequestSchema = &Schema{
		Type:     "object",
		Required: []string{"name", "subscribedChannel"},
		Properties: map[string]*Schema{
			"name":              {Type: "string", Example: "John"},
			"subscribedChannel": {Type: "string", Example: "Tech"},
		},
	}

	messageSchema = &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"message": {Type: "string"},
		},
	}
)

func jsonContent(schema *Schema, example interface{}) map[string]MediaType {
	return map[string]MediaType{
		"application/json": {Schema: schema, Example: example},
	}
}

// APIRoutes is the declarative description of the HTTP surface, consumed by
// Build. Paths and methods here must match the router's registrations.
var APIRoutes = []Route{
	{
		Method: "get",
		Path:   "/subscribers",
		Operation: &Operation{
			Summary: "List every subscriber",
			Tags:    []string{"subscribers"},
			Responses: map[string]Response{
				"200": {
					Description: "All subscribers with their identifiers",
					Content:     jsonContent(&Schema{Type: "array", Items: subscriberSchema}, nil),
				},
				"500": {
					Description: "Store failure",
					Content:     jsonContent(messageSchema, nil),
				},
			},
		},
	},
	{
		Method: "post",
		Path:   "/subscribers",
		Operation: &Operation{
			Summary: "Create a subscriber",
			Tags:    []string{"subscribers"},
			RequestBody: &RequestBody{
				Required: true,
				Content:  jsonContent(createRequestSchema, map[string]string{"name": "John", "subscribedChannel": "Tech"}),
			},
			Responses: map[string]Response{
				"201": {
					Description: "The created subscriber, including its assigned identifier",
					Content:     jsonContent(subscriberSchema, nil),
				},
				"400": {
					Description: "name or subscribedChannel missing",
					Content:     jsonContent(messageSchema, map[string]string{"message": "Name and subscribedChannel are required."}),
				},
				"500": {
					Description: "Store failure",
					Content:     jsonContent(messageSchema, nil),
				},
			},
		},
	},
	{
		Method: "get",
		Path:   "/subscribers/name",
		Operation: &Operation{
			Summary: "List subscribers projected to name and channel only",
			Tags:    []string{"subscribers"},
			Responses: map[string]Response{
				"200": {
					Description: "All subscribers without identifiers",
					Content:     jsonContent(&Schema{Type: "array", Items: subscriberNameSchema}, nil),
				},
				"500": {
					Description: "Store failure",
					Content:     jsonContent(messageSchema, nil),
				},
			},
		},
	},
	{
		Method: "get",
		Path:   "/subscribers/{id}",
		Operation: &Operation{
			Summary: "Fetch one subscriber by id",
			Tags:    []string{"subscribers"},
			Parameters: []Parameter{
				{Name: "id", In: "path", Required: true, Schema: &Schema{Type: "string"}},
			},
			Responses: map[string]Response{
				"200": {
					Description: "The matching subscriber",
					Content:     jsonContent(subscriberSchema, nil),
				},
				"400": {
					Description: "Unknown, malformed, or unreachable subscriber",
					Content:     jsonContent(messageSchema, map[string]string{"message": "Subscriber not found"}),
				},
			},
		},
	},
	{
		Method: "get",
		Path:   "/healthz",
		Operation: &Operation{
			Summary: "Process and store health",
			Tags:    []string{"health"},
			Responses: map[string]Response{
				"200": {
					Description: "Service status and store reachability",
					Content: jsonContent(&Schema{
						Type: "object",
						Properties: map[string]*Schema{
							"status": {Type: "string", Example: "healthy"},
							"store":  {Type: "string", Example: "ok"},
						},
					}, nil),
				},
			},
		},
	},
}
