package enums

// Allowed status moves. A status missing from a map is final; staying in the
// same status is always permitted.
var (
	leaveTransitions = map[LeaveStatus][]LeaveStatus{
		LeavePending: {LeaveApproved, LeaveRejected},
	}
	requestTransitions = map[RequestStatus][]RequestStatus{
		RequestPending: {RequestApproved, RequestDenied},
	}
	salaryTransitions = map[SalaryStatus][]SalaryStatus{
		SalaryPending: {SalaryDelayed, SalaryPaid},
		SalaryDelayed: {SalaryPaid},
	}
	interviewTransitions = map[InterviewStatus][]InterviewStatus{
		InterviewPending: {InterviewCompleted, InterviewCanceled},
	}
	scheduleTransitions = map[ScheduleStatus][]ScheduleStatus{
		ScheduleScheduled: {ScheduleCompleted, ScheduleCancelled},
	}
)

func (s LeaveStatus) CanTransition(to LeaveStatus) bool {
	return canTransition(leaveTransitions, s, to)
}

func (s RequestStatus) CanTransition(to RequestStatus) bool {
	return canTransition(requestTransitions, s, to)
}

func (s SalaryStatus) CanTransition(to SalaryStatus) bool {
	return canTransition(salaryTransitions, s, to)
}

func (s InterviewStatus) CanTransition(to InterviewStatus) bool {
	return canTransition(interviewTransitions, s, to)
}

func (s ScheduleStatus) CanTransition(to ScheduleStatus) bool {
	return canTransition(scheduleTransitions, s, to)
}

func canTransition[T comparable](table map[T][]T, from, to T) bool {
	if from == to {
		return true
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}
