package converting

// ConvertMap widens a header map so it can be attached to a structured
// log payload or diagnostics object as-is.
func ConvertMap(originalMap map[string][]string) map[string]interface{} {
	convertedMap := make(map[string]interface{}, len(originalMap))

	for key, values := range originalMap {
		convertedMap[key] = interface{}(values)
	}

	return convertedMap
}
