// Package github fetches the authenticated user's notifications from the
// GitHub REST API.
//
// One request is made per call, with the default http.Client: no retries and no
// timeout override. The recurring timer that invokes gh-notifier is the retry
// mechanism.
package github
