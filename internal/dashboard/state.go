package dashboard

import (
	"fmt"

	"github.com/imogenclam/visualmath/internal/model"
	"github.com/imogenclam/visualmath/internal/view"
)

// groupFallback is shown when the profile carries no group number.
const groupFallback = "Not specified"

// ProfilePanel is the render-ready profile block of the page.
type ProfilePanel struct {
	FullName string `json:"full_name"`
	UserType string `json:"user_type"`
	Group    string `json:"group"`
	Email    string `json:"email"`
}

// State is the dashboard's complete view state: everything the page
// needs to draw itself after an event.
type State struct {
	User          model.UserProfile `json:"user"`
	Welcome       string            `json:"welcome"`
	Profile       ProfilePanel      `json:"profile"`
	NavGroups     []view.NavGroup   `json:"nav_groups"`
	Nav           []view.NavLink    `json:"nav"`
	ActiveSection string            `json:"active_section"`
	Courses       []model.Course    `json:"courses,omitempty"`
}

// buildProfilePanel projects a profile into its display block.
func buildProfilePanel(user model.UserProfile) ProfilePanel {
	group := user.GroupNumber
	if group == "" {
		group = groupFallback
	}
	return ProfilePanel{
		FullName: user.FullName,
		UserType: string(user.UserType),
		Group:    group,
		Email:    user.Email,
	}
}

// buildWelcome renders the greeting shown on the home section.
func buildWelcome(user model.UserProfile) string {
	if user.IsZero() {
		return ""
	}
	return fmt.Sprintf("Welcome, %s! You are signed in as %s.", user.FullName, user.UserType)
}

// LectureListing is the render-ready lecture search result: either a
// card per lecture or the empty-result placeholder.
type LectureListing struct {
	Lectures    []model.LectureCard `json:"lectures"`
	Placeholder string              `json:"placeholder,omitempty"`
}

// noLecturesPlaceholder is shown when a search matches nothing.
const noLecturesPlaceholder = "No lectures found"
