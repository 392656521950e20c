package models

// TimePageLink bounds a page read of the event log by time window,
// page size and page number. StartTs/EndTs are unix ms, inclusive.
type TimePageLink struct {
	Limit   int
	Page    int
	StartTs int64
	EndTs   int64
}

// PageData is one page of event log entries ordered ascending by SeqID.
type PageData struct {
	Data    []*CloudEvent
	HasNext bool
}
