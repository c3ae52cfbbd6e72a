package models

// ToolCall is one LLM-requested tool invocation carried on an assistant
// message. ID pairs the call with the tool message holding its result.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCallsToMaps converts tool calls to the generic shape stored on
// thread_messages.tool_calls.
func ToolCallsToMaps(calls []ToolCall) []map[string]interface{} {
	if len(calls) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(calls))
	for _, c := range calls {
		out = append(out, map[string]interface{}{
			"id":        c.ID,
			"name":      c.Name,
			"arguments": c.Arguments,
		})
	}
	return out
}

// ToolCallsFromMaps converts stored tool_calls back to typed tool calls.
// Rows with a missing or non-string id are skipped.
func ToolCallsFromMaps(raw []map[string]interface{}) []ToolCall {
	out := make([]ToolCall, 0, len(raw))
	for _, m := range raw {
		id, ok := m["id"].(string)
		if !ok || id == "" {
			continue
		}
		tc := ToolCall{ID: id}
		if name, ok := m["name"].(string); ok {
			tc.Name = name
		}
		if args, ok := m["arguments"].(string); ok {
			tc.Arguments = args
		}
		out = append(out, tc)
	}
	return out
}
