package parameter

// EventQueueSize bounds the event buffer; the oldest events are evicted
// when a burst outruns the consuming tick
const EventQueueSize = 256
