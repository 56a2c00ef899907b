package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookhub/internal/httpapi/dto"
)

var (
	bookPage   int
	bookSearch string
	bookGenre  string
	bookYear   int
	bookSort   string
	reviewPage int

	bookTitle       string
	bookAuthor      string
	bookDescription string
	bookNewGenre    string
	bookNewYear     int
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Browse and manage books",
}

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books with search, filters and sorting",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.ListBooks(bookPage, bookSearch, bookGenre, bookYear, bookSort)
		if err != nil {
			return err
		}
		for _, b := range resp.Data {
			fmt.Printf("%s  %q by %s  %.1f★ (%d reviews)\n", b.ID, b.Title, b.Author, b.AverageRating, b.ReviewsCount)
		}
		fmt.Printf("page %d/%d (%d books)\n", resp.Page, resp.TotalPages, resp.Total)
		return nil
	},
}

var bookGetCmd = &cobra.Command{
	Use:   "get <bookID>",
	Short: "Show a book with its reviews and rating statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := apiClient.GetBook(args[0], reviewPage)
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var bookAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book (requires login)",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &dto.CreateBookRequest{
			Title:  bookTitle,
			Author: bookAuthor,
		}
		if bookDescription != "" {
			req.Description = &bookDescription
		}
		if bookNewGenre != "" {
			req.Genre = &bookNewGenre
		}
		if bookNewYear != 0 {
			req.Year = &bookNewYear
		}
		if err := apiClient.CreateBook(req); err != nil {
			return err
		}
		fmt.Println("Book created")
		return nil
	},
}

var bookUpdateCmd = &cobra.Command{
	Use:   "update <bookID>",
	Short: "Update your own book; omitted flags keep their value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &dto.UpdateBookRequest{}
		if cmd.Flags().Changed("title") {
			req.Title = &bookTitle
		}
		if cmd.Flags().Changed("author") {
			req.Author = &bookAuthor
		}
		if cmd.Flags().Changed("description") {
			req.Description = &bookDescription
		}
		if cmd.Flags().Changed("genre") {
			req.Genre = &bookNewGenre
		}
		if cmd.Flags().Changed("year") {
			req.Year = &bookNewYear
		}
		if err := apiClient.UpdateBook(args[0], req); err != nil {
			return err
		}
		fmt.Println("Book updated")
		return nil
	},
}

var bookDeleteCmd = &cobra.Command{
	Use:   "delete <bookID>",
	Short: "Delete your own book and all of its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := apiClient.DeleteBook(args[0]); err != nil {
			return err
		}
		fmt.Println("Book deleted")
		return nil
	},
}

func init() {
	bookListCmd.Flags().IntVar(&bookPage, "page", 1, "page number")
	bookListCmd.Flags().StringVar(&bookSearch, "search", "", "search title/author/description")
	bookListCmd.Flags().StringVar(&bookGenre, "genre", "", "filter by genre")
	bookListCmd.Flags().IntVar(&bookYear, "year", 0, "filter by publication year")
	bookListCmd.Flags().StringVar(&bookSort, "sort", "", "sort order: year, title or author")

	bookGetCmd.Flags().IntVar(&reviewPage, "review-page", 1, "review page number")

	for _, c := range []*cobra.Command{bookAddCmd, bookUpdateCmd} {
		c.Flags().StringVar(&bookTitle, "title", "", "book title")
		c.Flags().StringVar(&bookAuthor, "author", "", "book author")
		c.Flags().StringVar(&bookDescription, "description", "", "book description")
		c.Flags().StringVar(&bookNewGenre, "genre", "", "book genre")
		c.Flags().IntVar(&bookNewYear, "year", 0, "publication year")
	}
	bookAddCmd.MarkFlagRequired("title")
	bookAddCmd.MarkFlagRequired("author")

	bookCmd.AddCommand(bookListCmd, bookGetCmd, bookAddCmd, bookUpdateCmd, bookDeleteCmd)
	rootCmd.AddCommand(bookCmd)
}
