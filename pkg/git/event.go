package git

import (
	"sort"
	"strings"
)

// Event is an event that a hook can be subscribed to.
type Event int

// EventAll is the wildcard subscription, it stands for every current and
// future event and is distinct from all the concrete events.
const EventAll Event = 0

// Concrete events.
const (
	EventCheckRun Event = iota + 1
	EventCheckSuite
	EventCommitComment
	EventContentReference
	EventCreate
	EventDelete
	EventDeployKey
	EventDeployment
	EventDeploymentStatus
	EventDownload
	EventFollow
	EventFork
	EventForkApply
	EventGitHubAppAuthorization
	EventGist
	EventGollum
	EventInstallation
	EventInstallationRepositories
	EventIntegrationInstallationRepositories
	EventIssueComment
	EventIssues
	EventLabel
	EventMarketplacePurchase
	EventMember
	EventMembership
	EventMeta
	EventMilestone
	EventOrganization
	EventOrgBlock
	EventPackage
	EventPageBuild
	EventPing
	EventProject
	EventProjectCard
	EventProjectColumn
	EventPublic
	EventPullRequest
	EventPullRequestReview
	EventPullRequestReviewComment
	EventPush
	EventRegistryPackage
	EventRelease
	EventRepository
	EventRepositoryDispatch
	EventRepositoryImport
	EventRepositoryVulnerabilityAlert
	EventSecurityAdvisory
	EventStar
	EventStatus
	EventTeam
	EventTeamAdd
	EventWatch
	EventWorkflowDispatch
	EventWorkflowRun
)

const wildcardEvent = "*"

var eventNames = map[Event]string{
	EventAll:                                 wildcardEvent,
	EventCheckRun:                            "check_run",
	EventCheckSuite:                          "check_suite",
	EventCommitComment:                       "commit_comment",
	EventContentReference:                    "content_reference",
	EventCreate:                              "create",
	EventDelete:                              "delete",
	EventDeployKey:                           "deploy_key",
	EventDeployment:                          "deployment",
	EventDeploymentStatus:                    "deployment_status",
	EventDownload:                            "download",
	EventFollow:                              "follow",
	EventFork:                                "fork",
	EventForkApply:                           "fork_apply",
	EventGitHubAppAuthorization:              "github_app_authorization",
	EventGist:                                "gist",
	EventGollum:                              "gollum",
	EventInstallation:                        "installation",
	EventInstallationRepositories:            "installation_repositories",
	EventIntegrationInstallationRepositories: "integration_installation_repositories",
	EventIssueComment:                        "issue_comment",
	EventIssues:                              "issues",
	EventLabel:                               "label",
	EventMarketplacePurchase:                 "marketplace_purchase",
	EventMember:                              "member",
	EventMembership:                          "membership",
	EventMeta:                                "meta",
	EventMilestone:                           "milestone",
	EventOrganization:                        "organization",
	EventOrgBlock:                            "org_block",
	EventPackage:                             "package",
	EventPageBuild:                           "page_build",
	EventPing:                                "ping",
	EventProject:                             "project",
	EventProjectCard:                         "project_card",
	EventProjectColumn:                       "project_column",
	EventPublic:                              "public",
	EventPullRequest:                         "pull_request",
	EventPullRequestReview:                   "pull_request_review",
	EventPullRequestReviewComment:            "pull_request_review_comment",
	EventPush:                                "push",
	EventRegistryPackage:                     "registry_package",
	EventRelease:                             "release",
	EventRepository:                          "repository",
	EventRepositoryDispatch:                  "repository_dispatch",
	EventRepositoryImport:                    "repository_import",
	EventRepositoryVulnerabilityAlert:        "repository_vulnerability_alert",
	EventSecurityAdvisory:                    "security_advisory",
	EventStar:                                "star",
	EventStatus:                              "status",
	EventTeam:                                "team",
	EventTeamAdd:                             "team_add",
	EventWatch:                               "watch",
	EventWorkflowDispatch:                    "workflow_dispatch",
	EventWorkflowRun:                         "workflow_run",
}

var eventsByName = func() map[string]Event {
	m := make(map[string]Event, len(eventNames))
	for e, n := range eventNames {
		m[n] = e
	}
	m["all"] = EventAll
	return m
}()

// String returns the name the service uses for the event.
func (e Event) String() string {
	if n, ok := eventNames[e]; ok {
		return n
	}
	return "unknown"
}

// ParseEvent maps a service event name onto an Event, names are matched
// case-insensitively and both "*" and "all" are EventAll.
func ParseEvent(s string) (Event, error) {
	if e, ok := eventsByName[strings.ToLower(s)]; ok {
		return e, nil
	}
	return 0, &UnknownEventError{Event: s}
}

// EventSet is a set of Events.
type EventSet map[Event]struct{}

// NewEventSet parses each of the raw event names into a set, failing on the
// first name that is not known.
func NewEventSet(names ...string) (EventSet, error) {
	s := make(EventSet, len(names))
	for _, n := range names {
		e, err := ParseEvent(n)
		if err != nil {
			return nil, err
		}
		s[e] = struct{}{}
	}
	return s, nil
}

// Has returns true if e is in the set.
//
// A set containing EventAll does not report concrete events as present.
func (s EventSet) Has(e Event) bool {
	_, ok := s[e]
	return ok
}

// Events returns the members of the set in a stable order, with EventAll
// first.
func (s EventSet) Events() []Event {
	events := make([]Event, 0, len(s))
	for e := range s {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// Strings returns the service names of the members of the set.
func (s EventSet) Strings() []string {
	names := []string{}
	for _, e := range s.Events() {
		names = append(names, e.String())
	}
	return names
}
