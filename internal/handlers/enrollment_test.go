package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	ce "course_enrollment"
	"course_enrollment/internal/models"
	"course_enrollment/internal/service"
)

func TestEnrollHandler(t *testing.T) {
	enrollments := &mockEnrollments{enrollment: &models.Enrollment{ID: 5, UserID: 1, CourseID: 2}}
	r := newTestRouter(&service.Service{Enrollments: enrollments})

	w := doJSON(r, http.MethodPost, "/enroll", `{"user_id":1,"course_id":2}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("enroll status=%d, body=%s", w.Code, w.Body.String())
	}
	var out ce.EnrollmentConfirmation
	decode(t, w, &out)
	if out.EnrollmentID != 5 || out.Message != "enrollment successful" {
		t.Fatalf("unexpected confirmation: %+v", out)
	}
	if enrollments.lastUserID != 1 || enrollments.lastCourseID != 2 {
		t.Fatalf("ids not forwarded: user=%d course=%d", enrollments.lastUserID, enrollments.lastCourseID)
	}
}

func TestEnrollHandler_Errors(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		err       error
		wantCode  int
		wantCalls int
	}{
		{name: "not found", body: `{"user_id":1,"course_id":999}`, err: service.ErrNotFound, wantCode: http.StatusNotFound, wantCalls: 1},
		{name: "storage failure", body: `{"user_id":1,"course_id":2}`, err: errors.New("db down"), wantCode: http.StatusInternalServerError, wantCalls: 1},
		{name: "missing course id", body: `{"user_id":1}`, wantCode: http.StatusBadRequest},
		{name: "string ids", body: `{"user_id":"a","course_id":"b"}`, wantCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enrollments := &mockEnrollments{enrollErr: tc.err}
			r := newTestRouter(&service.Service{Enrollments: enrollments})

			w := doJSON(r, http.MethodPost, "/enroll", tc.body, nil)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if enrollments.enrollCalls != tc.wantCalls {
				t.Fatalf("Enroll calls: got %d, want %d", enrollments.enrollCalls, tc.wantCalls)
			}
		})
	}
}

func TestListEnrollmentsHandler(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	enrollments := &mockEnrollments{details: []models.EnrollmentDetail{
		{CourseID: 2, CourseName: "Go", CourseDescription: "basics", CoursePrice: 100, EnrollmentDate: at},
	}}
	r := newTestRouter(&service.Service{Enrollments: enrollments})

	w := doJSON(r, http.MethodGet, "/enrollments?user_id=7", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out []ce.EnrollmentView
	decode(t, w, &out)
	want := ce.EnrollmentView{CourseID: 2, CourseName: "Go", CourseDescription: "basics", CoursePrice: 100, EnrollmentDate: at}
	if len(out) != 1 || out[0].CourseID != want.CourseID || out[0].CourseName != want.CourseName ||
		out[0].CoursePrice != want.CoursePrice || !out[0].EnrollmentDate.Equal(at) {
		t.Fatalf("unexpected enrollments: %+v", out)
	}
	if enrollments.lastUserID != 7 {
		t.Fatalf("user id not forwarded: %d", enrollments.lastUserID)
	}
}

func TestListEnrollmentsHandler_EmptyAndInvalid(t *testing.T) {
	r := newTestRouter(&service.Service{Enrollments: &mockEnrollments{}})

	w := doJSON(r, http.MethodGet, "/enrollments?user_id=3", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	for _, q := range []string{"", "?user_id=", "?user_id=abc", "?user_id=-1"} {
		w := doJSON(r, http.MethodGet, "/enrollments"+q, "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", q, w.Code)
		}
	}
}
