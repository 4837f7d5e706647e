package common

// ClientIDHeaderName is the HTTP header used to carry the client install id
// on outbound requests to the sync backend.
const ClientIDHeaderName = "X-Client-Id"
