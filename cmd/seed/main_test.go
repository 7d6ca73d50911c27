package main

import "testing"

func TestFixtureIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range departmentFixtures() {
		if seen[d.ID] {
			t.Errorf("duplicate fixture ID %q", d.ID)
		}
		seen[d.ID] = true
	}
	for _, g := range groupFixtures() {
		if seen[g.ID] {
			t.Errorf("duplicate fixture ID %q", g.ID)
		}
		seen[g.ID] = true
	}
	for _, m := range memberFixtures() {
		if seen[m.ID] {
			t.Errorf("duplicate fixture ID %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestMemberFixturesReferenceSeededContainers(t *testing.T) {
	departments := map[string]bool{}
	for _, d := range departmentFixtures() {
		departments[d.ID] = true
	}
	groups := map[string]bool{}
	for _, g := range groupFixtures() {
		groups[g.ID] = true
	}

	for _, m := range memberFixtures() {
		if m.DisplayName == "" || m.MemberType == "" {
			t.Errorf("member %q missing display name or member type", m.ID)
		}
		if m.DepartmentID != "" && !departments[m.DepartmentID] {
			t.Errorf("member %q references unknown department %q", m.ID, m.DepartmentID)
		}
		for _, gid := range m.GroupIDs {
			if !groups[gid] {
				t.Errorf("member %q references unknown group %q", m.ID, gid)
			}
		}
	}
}
