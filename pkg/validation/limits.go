package validation

// MaxBodySize caps request bodies on the JSON API. Field length limits live
// in the request struct tags.
const MaxBodySize = 64 * 1024
