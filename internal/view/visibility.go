package view

import "github.com/imogenclam/visualmath/internal/model"

// NavGroup is a role-gated group of navigation links in the sidebar.
type NavGroup string

const (
	NavGroupStudent NavGroup = "student"
	NavGroupTeacher NavGroup = "teacher"
	NavGroupAdmin   NavGroup = "admin"
)

// Reveal maps a user's role to the navigation groups that must be
// shown. Pure and total: students see the student group, teachers the
// teacher group, admins both the admin and teacher groups, and any
// unknown or absent role sees nothing (least privilege).
func Reveal(role model.UserType) []NavGroup {
	switch role {
	case model.UserTypeStudent:
		return []NavGroup{NavGroupStudent}
	case model.UserTypeTeacher:
		return []NavGroup{NavGroupTeacher}
	case model.UserTypeAdmin:
		return []NavGroup{NavGroupAdmin, NavGroupTeacher}
	default:
		return nil
	}
}
