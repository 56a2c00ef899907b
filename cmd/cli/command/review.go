package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookhub/internal/httpapi/dto"
)

var (
	reviewRating   int
	reviewText     string
	userReviewPage int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Post and manage reviews",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add <bookID>",
	Short: "Review a book, one review per book (requires login)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &dto.CreateReviewRequest{Rating: reviewRating}
		if reviewText != "" {
			req.ReviewText = &reviewText
		}
		if err := apiClient.AddReview(args[0], req); err != nil {
			return err
		}
		fmt.Println("Review added")
		return nil
	},
}

var reviewUpdateCmd = &cobra.Command{
	Use:   "update <reviewID>",
	Short: "Update your own review; omitted flags keep their value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &dto.UpdateReviewRequest{}
		if cmd.Flags().Changed("rating") {
			req.Rating = &reviewRating
		}
		if cmd.Flags().Changed("text") {
			req.ReviewText = &reviewText
		}
		if err := apiClient.UpdateReview(args[0], req); err != nil {
			return err
		}
		fmt.Println("Review updated")
		return nil
	},
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete <reviewID>",
	Short: "Delete your own review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient.DeleteReview(args[0]); err != nil {
			return err
		}
		fmt.Println("Review deleted")
		return nil
	},
}

var reviewListCmd = &cobra.Command{
	Use:   "list <userID>",
	Short: "List the reviews a user has written",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.UserReviews(args[0], userReviewPage)
		if err != nil {
			return err
		}
		for _, r := range resp.Reviews {
			title := "?"
			if r.Book != nil {
				title = r.Book.Title
			}
			fmt.Printf("%s  %d★ on %q\n", r.ID, r.Rating, title)
		}
		fmt.Printf("page %d/%d (%d reviews)\n", resp.Pagination.Page, resp.Pagination.TotalPages, resp.Pagination.Total)
		return nil
	},
}

func init() {
	reviewAddCmd.Flags().IntVar(&reviewRating, "rating", 0, "star rating 1..5")
	reviewAddCmd.Flags().StringVar(&reviewText, "text", "", "review text")
	reviewAddCmd.MarkFlagRequired("rating")

	reviewUpdateCmd.Flags().IntVar(&reviewRating, "rating", 0, "star rating 1..5")
	reviewUpdateCmd.Flags().StringVar(&reviewText, "text", "", "review text")

	reviewListCmd.Flags().IntVar(&userReviewPage, "page", 1, "page number")

	reviewCmd.AddCommand(reviewAddCmd, reviewUpdateCmd, reviewDeleteCmd, reviewListCmd)
	rootCmd.AddCommand(reviewCmd)
}
