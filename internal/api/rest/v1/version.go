package v1

// BasePath prefixes every route of this API version
const BasePath = "/api/v1"
