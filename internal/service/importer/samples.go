package importer

import "strings"

func (s *ImporterServiceImpl) SampleTravelCSV() string {
	return strings.Join([]string{
		"Employee ID,Name,Start Date,End Date,Destination",
		"EMP001,John Smith,2026-02-20,2026-02-22,Tokyo",
		"EMP002,Sarah Johnson,2026-02-25,2026-02-27,Paris",
		"EMP003,Michael Brown,2026-03-01,2026-03-03,London",
	}, "\n")
}

func (s *ImporterServiceImpl) SampleLeaveCSV() string {
	return strings.Join([]string{
		"Employee ID,Name,Start Date,End Date,Leave Type,Remaining Days",
		"EMP004,Anna Schmidt,2026-02-18,2026-02-19,Annual Leave,15",
		"EMP005,Thomas Müller,2026-02-21,2026-02-21,Sick Leave,20",
		"EMP006,Emma Weber,2026-02-24,2026-02-26,Annual Leave,12",
	}, "\n")
}
