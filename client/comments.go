package client

// CommentsPlaceholderText is the row shown for a task with no comments.
const CommentsPlaceholderText = "작성된 댓글이 없습니다."

// LoadComments replaces a task's comment list with the server's. Action
// permissions are recomputed per row on every load, never cached.
func (a *App) LoadComments(taskID int64) {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return
	}
	comments, err := a.backend.ListComments(taskID)
	if err != nil {
		a.fail("", err)
		return
	}

	row.Comments = row.Comments[:0]
	for _, c := range comments {
		row.Comments = append(row.Comments, CommentRow{
			ID:        c.ID,
			Username:  c.Username,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			CanModify: a.state.canModifyComment(c.Username),
		})
	}
	row.CommentsLoaded = true
	row.CommentsPlaceholder = len(row.Comments) == 0
}

// AddComment posts a comment, then reloads the whole list. Reloading beats
// patching one row in: ordering and permissions come back ready-made.
func (a *App) AddComment(taskID int64, content string) {
	if a.state.TaskByID(taskID) == nil {
		return
	}
	if err := a.backend.AddComment(taskID, content); err != nil {
		a.fail("댓글 작성 실패: ", err)
		return
	}
	a.LoadComments(taskID)
}

// EnterCommentEdit switches one comment row into edit mode.
func (a *App) EnterCommentEdit(taskID, commentID int64) {
	if c := a.commentByID(taskID, commentID); c != nil {
		c.Editing = true
	}
}

// CancelCommentEdit returns a comment row to view mode.
func (a *App) CancelCommentEdit(taskID, commentID int64) {
	if c := a.commentByID(taskID, commentID); c != nil {
		c.Editing = false
	}
}

// SaveCommentEdit persists an edit and patches only the content text.
func (a *App) SaveCommentEdit(taskID, commentID int64, content string) {
	c := a.commentByID(taskID, commentID)
	if c == nil {
		return
	}
	newContent, err := a.backend.EditComment(commentID, content)
	if err != nil {
		a.fail("댓글 수정 실패: ", err)
		return
	}
	c.Content = newContent
	c.Editing = false
}

// DeleteComment removes a comment after confirmation.
func (a *App) DeleteComment(taskID, commentID int64) {
	row := a.state.TaskByID(taskID)
	if row == nil || a.commentByID(taskID, commentID) == nil {
		return
	}
	if !a.confirmer.Confirm("정말로 이 댓글을 삭제하시겠습니까?") {
		return
	}
	if err := a.backend.DeleteComment(commentID); err != nil {
		a.fail("댓글 삭제 실패: ", err)
		return
	}
	for i := range row.Comments {
		if row.Comments[i].ID == commentID {
			row.Comments = append(row.Comments[:i], row.Comments[i+1:]...)
			break
		}
	}
	row.CommentsPlaceholder = len(row.Comments) == 0
}

func (a *App) commentByID(taskID, commentID int64) *CommentRow {
	row := a.state.TaskByID(taskID)
	if row == nil {
		return nil
	}
	for i := range row.Comments {
		if row.Comments[i].ID == commentID {
			return &row.Comments[i]
		}
	}
	return nil
}
