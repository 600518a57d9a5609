// Package ebridge adapts Go channels to the stream contract at the
// library boundary.
//
// [RunChannelToSubject] turns any external event source that can
// produce on a channel into a feed for a subject, and
// [RunPublisherToChannel] drains a publisher into a channel whose
// consumer's read pace drives the stream's demand. Neither side of
// the core needs to know about the concrete source or consumer.
package ebridge
