// Package gitlab provides a clean, idiomatic client for the GitLab v3 REST API.
//
// The client covers session management, users and SSH keys, projects and their
// members, hooks, and deploy keys, repository contents (branches, tags,
// commits, files, archives), issues, milestones, merge requests, snippets,
// notes, groups, labels, and instance-wide system hooks.
//
// # Architecture
//
// The library is built on several key principles:
//
//  1. A single Client bound to one GitLab host, safe for concurrent use
//  2. One method per remote operation, each taking a context.Context
//  3. Functional options for client construction
//  4. Typed option structs for operations with many optional parameters
//  5. Consistent error handling using the workspace errors library
//  6. Invalid input rejected locally before a request is made
//
// # Authentication
//
// Requests authenticate with a private token sent on every call. The token
// can be supplied at construction time, or obtained at runtime by logging in
// with a username (or email) and password:
//
//	client, err := gitlab.NewClient("gitlab.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	session, err := client.Login(ctx, gitlab.LoginOptions{
//	    Username: "jdoe",
//	    Password: "secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// The returned token is stored on the client automatically.
//	fmt.Println(session.PrivateToken)
//
// Administrators can act on behalf of another user by setting a sudo
// identity, which attaches to every subsequent request until cleared:
//
//	client.SetSudo("jdoe")
//	defer client.ClearSudo()
//
// # Pagination
//
// List operations take pagination parameters through ListOptions (or an
// operation-specific options struct embedding it). Zero values fall back to
// the remote defaults of page 1 and 20 items per page:
//
//	projects, err := client.ListProjects(ctx, gitlab.ListOptions{
//	    Page:    2,
//	    PerPage: 50,
//	})
//
// # Error Handling
//
// Every failure is a typed error from the workspace errors library. Remote
// refusals are mapped from their HTTP status: missing resources report
// ErrCodeNotFound, rejected credentials ErrCodeAuthenticationFailed,
// insufficient permissions ErrCodePermissionDenied, and creations refused
// because an account limit is exhausted ErrCodeQuotaExceeded. The original
// status code travels along as error context.
//
//	project, err := client.GetProject(ctx, 42)
//	if err != nil {
//	    if errors.GetCode(err) == gitlab.ErrCodeNotFound {
//	        // handle the missing project
//	    }
//	    return err
//	}
//
// # Usage Examples
//
// ## Example 1: Creating a Project with Options
//
//	func createProject(ctx context.Context, client *gitlab.Client) error {
//	    public := true
//	    project, err := client.CreateProject(ctx, "widget", &gitlab.CreateProjectOptions{
//	        Description:   "The widget service",
//	        IssuesEnabled: &public,
//	        Public:        &public,
//	    })
//	    if err != nil {
//	        return err
//	    }
//
//	    fmt.Printf("Created project %d at %s\n", project.ID, project.WebURL)
//	    return nil
//	}
//
// ## Example 2: Managing Membership
//
//	func addDeveloper(ctx context.Context, client *gitlab.Client, projectID, userID int) error {
//	    level, err := gitlab.ParseAccessLevel("developer")
//	    if err != nil {
//	        return err
//	    }
//
//	    member, err := client.AddProjectMember(ctx, projectID, userID, level)
//	    if err != nil {
//	        return err
//	    }
//
//	    fmt.Printf("Added %s as %s\n", member.Username, member.AccessLevel)
//	    return nil
//	}
//
// ## Example 3: Working with Repository Files
//
//	func publishChangelog(ctx context.Context, client *gitlab.Client, projectID int) error {
//	    err := client.CreateFile(ctx, projectID,
//	        "CHANGELOG.md", "master", "# Changelog\n", "add changelog")
//	    if err != nil {
//	        return err
//	    }
//
//	    content, err := client.RawFile(ctx, projectID, "master", "CHANGELOG.md")
//	    if err != nil {
//	        return err
//	    }
//
//	    fmt.Println(content)
//	    return nil
//	}
//
// ## Example 4: Merge Request Lifecycle
//
//	func mergeFeature(ctx context.Context, client *gitlab.Client, projectID int) error {
//	    mr, err := client.CreateMergeRequest(ctx, projectID,
//	        "feature", "master", "Add the feature", nil)
//	    if err != nil {
//	        return err
//	    }
//
//	    if _, err := client.CommentMergeRequest(ctx, projectID, mr.ID, "LGTM"); err != nil {
//	        return err
//	    }
//
//	    merged, err := client.AcceptMergeRequest(ctx, projectID, mr.ID, "merge the feature")
//	    if err != nil {
//	        return err
//	    }
//
//	    fmt.Printf("Merge request %d is now %s\n", merged.ID, merged.State)
//	    return nil
//	}
package gitlab
