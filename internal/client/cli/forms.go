package cli

import (
	"context"
	"fmt"
	"strconv"
)

// getMultiline is a test seam for the multiline input helper.
var getMultiline = GetMultiline

// Comment leaves a rating comment on a listing. Like the mobile app, the
// user must be logged in.
func (a *App) Comment(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You must log in to leave a comment.")
		return nil
	}

	postID := ""
	if len(args) > 0 {
		postID = args[0]
	} else {
		id, err := getSimpleText(a.reader, "Listing id", a.out)
		if err != nil {
			return err
		}
		postID = id
	}

	content, err := getSimpleText(a.reader, "Your comment", a.out)
	if err != nil {
		return err
	}

	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil || rating < 1 || rating > 5 {
		fmt.Fprintln(a.out, "Rating must be a number from 1 to 5.")
		return fmt.Errorf("invalid rating: %q", ratingText)
	}

	if err := a.client.CreateComment(ctx, postID, content, rating); err != nil {
		fmt.Fprintf(a.out, "Failed to submit comment: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Comment submitted.")
	return nil
}

// Feedback sends free-form feedback about the service.
func (a *App) Feedback(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Your feedback", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Fprintln(a.out, "Feedback is empty, nothing sent.")
		return nil
	}

	if err := a.client.CreateFeedback(ctx, content); err != nil {
		fmt.Fprintf(a.out, "Failed to send feedback: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Thank you for your feedback!")
	return nil
}
