package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"place-distance-service/internal/form"
	"strings"
	"sync"
)

// runShell reads commands from in until EOF or "quit". Searches run in the
// background so a slow lookup never blocks the prompt; the form keeps only
// the latest search per role. Pending work is awaited before returning.
func runShell(ctx context.Context, in io.Reader, out io.Writer, f *form.Form) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, arg, _ := strings.Cut(line, " ")

		switch strings.ToLower(verb) {
		case "quit", "exit":
			return nil
		case "calc":
			// Waits for pending searches so "start a; end b; calc" behaves
			// like the user clicking after both statuses settled.
			wg.Wait()
			if !f.Ready() {
				fmt.Fprintln(out, "Resolve both places first.")
				continue
			}
			f.CalculateDistance(ctx)
		case "status":
			wg.Wait()
			printState(out, f.Snapshot())
		default:
			role, err := form.ParseRole(verb)
			if err != nil {
				fmt.Fprintf(out, "unknown command %q\n", verb)
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				f.SearchLocation(ctx, role, arg)
			}()
		}
	}
	return scanner.Err()
}

func printState(out io.Writer, st form.State) {
	for _, rs := range []struct {
		role form.Role
		st   form.RoleState
	}{{form.Start, st.Start}, {form.End, st.End}} {
		if rs.st.Coordinates != nil {
			fmt.Fprintf(out, "%s: %s (%v, %v)\n", rs.role, rs.st.Status.Message, rs.st.Coordinates.Lat, rs.st.Coordinates.Lon)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", rs.role, rs.st.Status.Message)
	}
	if st.ResultVisible && st.Result != nil {
		fmt.Fprintf(out, "distance: %s km\n", st.Result.DistanceKm)
	}
}
