// Package enums holds the closed value sets shared by the HR entities.
package enums

import "slices"

type Role string

const (
	RoleHRAdmin  Role = "HR-Admin"
	RoleEmployee Role = "Employee"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

type SalaryStatus string

const (
	SalaryPending SalaryStatus = "Pending"
	SalaryDelayed SalaryStatus = "Delayed"
	SalaryPaid    SalaryStatus = "Paid"
)

type RecruitmentStatus string

const (
	RecruitmentConductInterview   RecruitmentStatus = "Conduct-Interview"
	RecruitmentRejected           RecruitmentStatus = "Rejected"
	RecruitmentPending            RecruitmentStatus = "Pending"
	RecruitmentInterviewCompleted RecruitmentStatus = "Interview-Completed"
	RecruitmentNotSpecified       RecruitmentStatus = "Not-Specified"
)

type InterviewStatus string

const (
	InterviewPending   InterviewStatus = "Pending"
	InterviewCanceled  InterviewStatus = "Canceled"
	InterviewCompleted InterviewStatus = "Completed"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestDenied   RequestStatus = "Denied"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceHalfDay AttendanceStatus = "Half-Day"
	AttendanceLeave   AttendanceStatus = "Leave"
)

type AudienceType string

const (
	AudienceDepartment AudienceType = "Department-Specific"
	AudienceEmployee   AudienceType = "Employee-Specific"
)

type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftEvening   ShiftType = "evening"
	ShiftNight     ShiftType = "night"
	ShiftCustom    ShiftType = "custom"
)

type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

var (
	roles               = []Role{RoleHRAdmin, RoleEmployee}
	leaveStatuses       = []LeaveStatus{LeavePending, LeaveApproved, LeaveRejected}
	salaryStatuses      = []SalaryStatus{SalaryPending, SalaryDelayed, SalaryPaid}
	recruitmentStatuses = []RecruitmentStatus{RecruitmentConductInterview, RecruitmentRejected, RecruitmentPending, RecruitmentInterviewCompleted, RecruitmentNotSpecified}
	interviewStatuses   = []InterviewStatus{InterviewPending, InterviewCanceled, InterviewCompleted}
	requestStatuses     = []RequestStatus{RequestPending, RequestApproved, RequestDenied}
	attendanceStatuses  = []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay, AttendanceLeave}
	audienceTypes       = []AudienceType{AudienceDepartment, AudienceEmployee}
	shiftTypes          = []ShiftType{ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight, ShiftCustom}
	scheduleStatuses    = []ScheduleStatus{ScheduleScheduled, ScheduleCompleted, ScheduleCancelled}
)

func (r Role) Valid() bool              { return slices.Contains(roles, r) }
func (s LeaveStatus) Valid() bool       { return slices.Contains(leaveStatuses, s) }
func (s SalaryStatus) Valid() bool      { return slices.Contains(salaryStatuses, s) }
func (s RecruitmentStatus) Valid() bool { return slices.Contains(recruitmentStatuses, s) }
func (s InterviewStatus) Valid() bool   { return slices.Contains(interviewStatuses, s) }
func (s RequestStatus) Valid() bool     { return slices.Contains(requestStatuses, s) }
func (s AttendanceStatus) Valid() bool  { return slices.Contains(attendanceStatuses, s) }
func (a AudienceType) Valid() bool      { return slices.Contains(audienceTypes, a) }
func (s ShiftType) Valid() bool         { return slices.Contains(shiftTypes, s) }
func (s ScheduleStatus) Valid() bool    { return slices.Contains(scheduleStatuses, s) }

func Roles() []string               { return names(roles) }
func LeaveStatuses() []string       { return names(leaveStatuses) }
func SalaryStatuses() []string      { return names(salaryStatuses) }
func RecruitmentStatuses() []string { return names(recruitmentStatuses) }
func InterviewStatuses() []string   { return names(interviewStatuses) }
func RequestStatuses() []string     { return names(requestStatuses) }
func AttendanceStatuses() []string  { return names(attendanceStatuses) }
func AudienceTypes() []string       { return names(audienceTypes) }
func ShiftTypes() []string          { return names(shiftTypes) }
func ScheduleStatuses() []string    { return names(scheduleStatuses) }

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
