package api

// Package api implements the authenticated REST client for the Ghumakkad
// backend. It owns the bearer-token handling for every call: the token is
// read from the session store at call time, and a single 401/403 response
// tears the whole session down through the registered callback. There is no
// retry, no token refresh, and no request queueing; callers are expected to
// short-circuit on error and surface the message through a notification.
