package gitlab

import (
	"encoding/json"
	"time"
)

// User contains account information as returned by the users endpoints.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	State     string `json:"state"`
	AvatarURL string `json:"avatar_url"`

	Bio        string `json:"bio"`
	Skype      string `json:"skype"`
	Linkedin   string `json:"linkedin"`
	Twitter    string `json:"twitter"`
	WebsiteURL string `json:"website_url"`

	ThemeID          int  `json:"theme_id"`
	ColorSchemeID    int  `json:"color_scheme_id"`
	IsAdmin          bool `json:"is_admin"`
	CanCreateGroup   bool `json:"can_create_group"`
	CanCreateProject bool `json:"can_create_project"`

	CreatedAt time.Time `json:"created_at"`
}

// SSHKey is a user SSH key or a project deploy key; both share a shape.
type SSHKey struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// Namespace is the user or group a project lives under.
type Namespace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Project contains project information.
type Project struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	NameWithNamespace string `json:"name_with_namespace"`
	Path              string `json:"path"`
	PathWithNamespace string `json:"path_with_namespace"`
	Description       string `json:"description"`
	DefaultBranch     string `json:"default_branch"`

	Owner     *Namespace `json:"owner,omitempty"`
	Namespace *Namespace `json:"namespace,omitempty"`

	Public          bool `json:"public"`
	VisibilityLevel int  `json:"visibility_level"`
	Archived        bool `json:"archived"`

	IssuesEnabled        bool `json:"issues_enabled"`
	MergeRequestsEnabled bool `json:"merge_requests_enabled"`
	WikiEnabled          bool `json:"wiki_enabled"`
	SnippetsEnabled      bool `json:"snippets_enabled"`

	SSHURLToRepo  string `json:"ssh_url_to_repo"`
	HTTPURLToRepo string `json:"http_url_to_repo"`
	WebURL        string `json:"web_url"`

	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// Event is a single entry of the project activity feed. The data payload
// varies by action and is left raw.
type Event struct {
	ProjectID   int             `json:"project_id"`
	ActionName  string          `json:"action_name"`
	TargetID    int             `json:"target_id"`
	TargetType  string          `json:"target_type"`
	TargetTitle string          `json:"target_title"`
	AuthorID    int             `json:"author_id"`
	Data        json.RawMessage `json:"data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Member is a project or group membership entry: a user plus their access
// level.
type Member struct {
	ID          int         `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	State       string      `json:"state"`
	AccessLevel AccessLevel `json:"access_level"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Hook is a project webhook.
type Hook struct {
	ID        int       `json:"id"`
	URL       string    `json:"url"`
	ProjectID int       `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`

	PushEvents          bool `json:"push_events"`
	IssuesEvents        bool `json:"issues_events"`
	MergeRequestsEvents bool `json:"merge_requests_events"`
}

// SystemHook is an instance-wide webhook.
type SystemHook struct {
	ID        int       `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// CommitIdentity names a commit author or committer.
type CommitIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BranchCommit is the commit summary embedded in branch and tag payloads.
type BranchCommit struct {
	ID            string         `json:"id"`
	Tree          string         `json:"tree"`
	Message       string         `json:"message"`
	ParentIDs     []string       `json:"parents,omitempty"`
	Author        CommitIdentity `json:"author"`
	Committer     CommitIdentity `json:"committer"`
	AuthoredDate  time.Time      `json:"authored_date"`
	CommittedDate time.Time      `json:"committed_date"`
}

// Branch is a repository branch.
type Branch struct {
	Name      string        `json:"name"`
	Protected bool          `json:"protected"`
	Commit    *BranchCommit `json:"commit,omitempty"`
}

// Tag is a repository tag.
type Tag struct {
	Name      string        `json:"name"`
	Message   string        `json:"message"`
	Protected bool          `json:"protected"`
	Commit    *BranchCommit `json:"commit,omitempty"`
}

// Commit is an entry of the repository commit log.
type Commit struct {
	ID          string    `json:"id"`
	ShortID     string    `json:"short_id"`
	Title       string    `json:"title"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// Diff is a single file change of a commit or comparison.
type Diff struct {
	Diff        string `json:"diff"`
	NewPath     string `json:"new_path"`
	OldPath     string `json:"old_path"`
	AMode       string `json:"a_mode"`
	BMode       string `json:"b_mode"`
	NewFile     bool   `json:"new_file"`
	RenamedFile bool   `json:"renamed_file"`
	DeletedFile bool   `json:"deleted_file"`
}

// TreeEntry is a file or directory of the repository tree listing.
type TreeEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Mode string `json:"mode"`
}

// Contributor is a repository contributor with commit statistics.
type Contributor struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// Comparison is the result of comparing two branches, tags, or commits.
type Comparison struct {
	Commit         *Commit  `json:"commit,omitempty"`
	Commits        []Commit `json:"commits"`
	Diffs          []Diff   `json:"diffs"`
	CompareTimeout bool     `json:"compare_timeout"`
	CompareSameRef bool     `json:"compare_same_ref"`
}

// File contains repository file metadata and Base64-encoded content.
type File struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	Size     int    `json:"size"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
	Ref      string `json:"ref"`
	BlobID   string `json:"blob_id"`
	CommitID string `json:"commit_id"`
}

// Milestone is a project milestone.
type Milestone struct {
	ID          int       `json:"id"`
	IID         int       `json:"iid"`
	ProjectID   int       `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	DueDate     string    `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Issue is a project issue.
type Issue struct {
	ID          int        `json:"id"`
	IID         int        `json:"iid"`
	ProjectID   int        `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	Labels      []string   `json:"labels"`
	Milestone   *Milestone `json:"milestone,omitempty"`
	Author      *User      `json:"author,omitempty"`
	Assignee    *User      `json:"assignee,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MergeRequest is a project merge request.
type MergeRequest struct {
	ID              int    `json:"id"`
	IID             int    `json:"iid"`
	ProjectID       int    `json:"project_id"`
	SourceBranch    string `json:"source_branch"`
	TargetBranch    string `json:"target_branch"`
	SourceProjectID int    `json:"source_project_id"`
	TargetProjectID int    `json:"target_project_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	State           string `json:"state"`
	Upvotes         int    `json:"upvotes"`
	Downvotes       int    `json:"downvotes"`
	Author          *User  `json:"author,omitempty"`
	Assignee        *User  `json:"assignee,omitempty"`
}

// Note is a comment on an issue, snippet, or merge request.
type Note struct {
	ID         int       `json:"id"`
	Body       string    `json:"body"`
	Attachment string    `json:"attachment"`
	Author     *User     `json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Snippet is a project code snippet.
type Snippet struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	FileName  string    `json:"file_name"`
	Author    *User     `json:"author,omitempty"`
	ExpiresAt string    `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Group is a GitLab group.
type Group struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Description string    `json:"description"`
	OwnerID     int       `json:"owner_id"`
	Projects    []Project `json:"projects,omitempty"`
}

// Label is a project label; labels are identified by name, not id.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListOptions contains the pagination parameters shared by every list
// operation. Zero values are replaced by the remote defaults (page 1, 20
// items) before the request is built, so both parameters are always sent.
type ListOptions struct {
	// Page is the page number to return (1-indexed).
	Page int `url:"page"`

	// PerPage is the number of items per page.
	PerPage int `url:"per_page"`
}

// withDefaults fills in the documented pagination defaults.
func (o ListOptions) withDefaults() ListOptions {
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.PerPage <= 0 {
		o.PerPage = 20
	}
	return o
}

// ListUsersOptions contains options for listing users.
type ListUsersOptions struct {
	// Search filters users by name, username, or email.
	Search string `url:"search,omitempty"`

	ListOptions
}

// CreateUserOptions contains the optional fields for CreateUser. All fields
// are passed through to the remote API.
type CreateUserOptions struct {
	Skype          string `url:"skype,omitempty"`
	Linkedin       string `url:"linkedin,omitempty"`
	Twitter        string `url:"twitter,omitempty"`
	WebsiteURL     string `url:"website_url,omitempty"`
	Bio            string `url:"bio,omitempty"`
	ProjectsLimit  *int   `url:"projects_limit,omitempty"`
	ExternUID      string `url:"extern_uid,omitempty"`
	Provider       string `url:"provider,omitempty"`
	Admin          *bool  `url:"admin,omitempty"`
	CanCreateGroup *bool  `url:"can_create_group,omitempty"`
	Confirm        *bool  `url:"confirm,omitempty"`
}

// EditUserOptions contains the fields for EditUser. Only non-nil fields are
// sent. A zero-value (or nil) options struct sends an empty update, which the
// remote API interprets as clearing every editable field; callers must set at
// least one field unless that is what they want.
type EditUserOptions struct {
	Name       *string `url:"name,omitempty"`
	Username   *string `url:"username,omitempty"`
	Email      *string `url:"email,omitempty"`
	Password   *string `url:"password,omitempty"`
	Skype      *string `url:"skype,omitempty"`
	Linkedin   *string `url:"linkedin,omitempty"`
	Twitter    *string `url:"twitter,omitempty"`
	WebsiteURL *string `url:"website_url,omitempty"`
	Bio        *string `url:"bio,omitempty"`
	Admin      *bool   `url:"admin,omitempty"`
}

// CreateProjectOptions contains the optional fields for CreateProject and
// CreateProjectForUser.
type CreateProjectOptions struct {
	Path                 string `url:"path,omitempty"`
	NamespaceID          *int   `url:"namespace_id,omitempty"`
	Description          string `url:"description,omitempty"`
	DefaultBranch        string `url:"default_branch,omitempty"`
	IssuesEnabled        *bool  `url:"issues_enabled,omitempty"`
	MergeRequestsEnabled *bool  `url:"merge_requests_enabled,omitempty"`
	WikiEnabled          *bool  `url:"wiki_enabled,omitempty"`
	SnippetsEnabled      *bool  `url:"snippets_enabled,omitempty"`
	Public               *bool  `url:"public,omitempty"`
	VisibilityLevel      *int   `url:"visibility_level,omitempty"`
	ImportURL            string `url:"import_url,omitempty"`
}

// ListMembersOptions contains options for listing project members.
type ListMembersOptions struct {
	// Query filters members by name.
	Query string `url:"query,omitempty"`

	ListOptions
}

// ListCommitsOptions contains options for listing repository commits.
type ListCommitsOptions struct {
	// RefName is the branch or tag to list; defaults to the default branch.
	RefName string `url:"ref_name,omitempty"`

	ListOptions
}

// TreeOptions contains options for listing the repository tree.
type TreeOptions struct {
	// Path restricts the listing to a subdirectory.
	Path string `url:"path,omitempty"`

	// RefName is the branch or tag to list; defaults to the default branch.
	RefName string `url:"ref_name,omitempty"`
}

// CreateIssueOptions contains the optional fields for CreateIssue.
type CreateIssueOptions struct {
	Description string `url:"description,omitempty"`
	AssigneeID  *int   `url:"assignee_id,omitempty"`
	MilestoneID *int   `url:"milestone_id,omitempty"`

	// Labels is a comma-separated label list.
	Labels string `url:"labels,omitempty"`
}

// EditIssueOptions contains the fields for EditIssue. Only non-nil fields are
// sent; see EditUserOptions for the empty-update caveat.
type EditIssueOptions struct {
	Title       *string `url:"title,omitempty"`
	Description *string `url:"description,omitempty"`
	AssigneeID  *int    `url:"assignee_id,omitempty"`
	MilestoneID *int    `url:"milestone_id,omitempty"`
	Labels      *string `url:"labels,omitempty"`

	// StateEvent transitions the issue ("close" or "reopen").
	StateEvent *string `url:"state_event,omitempty"`
}

// CreateMilestoneOptions contains the optional fields for CreateMilestone.
type CreateMilestoneOptions struct {
	Description string `url:"description,omitempty"`
	DueDate     string `url:"due_date,omitempty"`
}

// EditMilestoneOptions contains the fields for EditMilestone. Only non-nil
// fields are sent; see EditUserOptions for the empty-update caveat.
type EditMilestoneOptions struct {
	Title       *string `url:"title,omitempty"`
	Description *string `url:"description,omitempty"`
	DueDate     *string `url:"due_date,omitempty"`
	StateEvent  *string `url:"state_event,omitempty"`
}

// ListMergeRequestsOptions contains options for listing merge requests.
type ListMergeRequestsOptions struct {
	// State filters merge requests ("opened", "closed", "merged").
	State string `url:"state,omitempty"`

	ListOptions
}

// CreateMergeRequestOptions contains the optional fields for
// CreateMergeRequest.
type CreateMergeRequestOptions struct {
	AssigneeID      *int `url:"assignee_id,omitempty"`
	TargetProjectID *int `url:"target_project_id,omitempty"`
}

// UpdateMergeRequestOptions contains the fields for UpdateMergeRequest. Only
// non-nil fields are sent; see EditUserOptions for the empty-update caveat.
type UpdateMergeRequestOptions struct {
	SourceBranch *string `url:"source_branch,omitempty"`
	TargetBranch *string `url:"target_branch,omitempty"`
	Title        *string `url:"title,omitempty"`
	AssigneeID   *int    `url:"assignee_id,omitempty"`

	// StateEvent transitions the merge request ("close" or "reopen").
	StateEvent *string `url:"state_event,omitempty"`
}

// CreateSnippetOptions contains the optional fields for CreateSnippet.
type CreateSnippetOptions struct {
	// Lifetime is the expiration date of the snippet.
	Lifetime string `url:"lifetime,omitempty"`
}

// EditLabelOptions contains the fields for EditLabel. At least one must be
// set for the remote API to accept the update.
type EditLabelOptions struct {
	NewName string `url:"new_name,omitempty"`
	Color   string `url:"color,omitempty"`
}
