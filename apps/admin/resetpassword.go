package main

import (
	"context"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/user"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	ctx := context.Background()
	usr, err := cli.getUser(ctx, uname)
	if err != nil {
		return err
	}
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	if _, err := cli.usrRepo.UpdateUser(ctx, usr); err != nil {
		return err
	}
	return nil
}

// getUser looks a user up by username first, then by email.
func (cli *commandLine) getUser(ctx context.Context, uname string) (user.User, error) {
	uname = core.CleanString(uname, true /* lower */)
	usr, err := cli.usrRepo.GetUserByUsername(ctx, uname)
	if err == user.ErrNotFound {
		return cli.usrRepo.GetUserByEmail(ctx, uname)
	}
	return usr, err
}
